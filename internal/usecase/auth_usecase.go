package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/priyansh911911/Furniture-B/internal/cfg"
	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase реализует вход администратора и работу с сессиями.
type AuthUseCase struct {
	adminRepo   AdminRepository
	sessionRepo SessionRepository
	cfg         *cfg.AuthCfg
	logger      logger.Logger
}

func NewAuthUC(adminRepo AdminRepository, sessionRepo SessionRepository, cfg *cfg.AuthCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Login проверяет учётные данные и создаёт сессию. Возвращает идентификатор сессии.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (a *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	const op = "AuthUseCase.Login"

	admin, err := a.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, e.ErrAdminNotFound) {
			return "", e.Wrap(op, e.ErrInvalidCredentials)
		}
		return "", e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", e.Wrap(op, e.ErrInvalidCredentials)
	}

	sid := uuid.NewString()
	if err := a.sessionRepo.Set(ctx, sid, admin.ID, a.cfg.SessionTTL); err != nil {
		return "", e.Wrap(op, err)
	}

	return sid, nil
}

func (a *AuthUseCase) Logout(ctx context.Context, sid string) error {
	const op = "AuthUseCase.Logout"

	if err := a.sessionRepo.Delete(ctx, sid); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ValidateSession сообщает, существует ли живая сессия с таким идентификатором.
func (a *AuthUseCase) ValidateSession(ctx context.Context, sid string) bool {
	if sid == "" {
		return false
	}

	if _, err := a.sessionRepo.Get(ctx, sid); err != nil {
		if !errors.Is(err, e.ErrSessionNotFound) {
			a.logger.Warnf("session lookup failed: %v", err)
		}
		return false
	}

	return true
}

// CreateInitialAdmin создаёт первоначального администратора из конфигурации.
// Повторный вызов при существующем администраторе возвращает конфликт.
func (a *AuthUseCase) CreateInitialAdmin(ctx context.Context) error {
	const op = "AuthUseCase.CreateInitialAdmin"

	if a.cfg.AdminEmail == "" || a.cfg.AdminPassword == "" {
		return e.Wrap(op, e.ErrAdminNotConfigured)
	}

	if _, err := a.adminRepo.GetByEmail(ctx, a.cfg.AdminEmail); err == nil {
		return e.Wrap(op, e.ErrAdminExists)
	} else if !errors.Is(err, e.ErrAdminNotFound) {
		return e.Wrap(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return e.Wrap(op, err)
	}

	if _, err := a.adminRepo.Create(ctx, domain.NewAdmin(a.cfg.AdminEmail, string(hash))); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/priyansh911911/Furniture-B/internal/cfg"
	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/pkg/e"
)

func newAuthUCForTest(authCfg *cfg.AuthCfg) (*AuthUseCase, *fakeAdminRepo, *fakeSessionRepo) {
	adminRepo := newFakeAdminRepo()
	sessionRepo := newFakeSessionRepo()
	uc := NewAuthUC(adminRepo, sessionRepo, authCfg, nopLogger{})
	return uc, adminRepo, sessionRepo
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, email, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), domain.NewAdmin(email, string(hash)))
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	authCfg := &cfg.AuthCfg{SessionTTL: time.Hour}

	t.Run("valid credentials create a session", func(t *testing.T) {
		uc, adminRepo, sessionRepo := newAuthUCForTest(authCfg)
		seedAdmin(t, adminRepo, "admin@example.com", "secret")

		sid, err := uc.Login(ctx, "admin@example.com", "secret")
		require.NoError(t, err)
		require.NotEmpty(t, sid)

		_, err = sessionRepo.Get(ctx, sid)
		assert.NoError(t, err)
		assert.True(t, uc.ValidateSession(ctx, sid))
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		uc, adminRepo, _ := newAuthUCForTest(authCfg)
		seedAdmin(t, adminRepo, "admin@example.com", "secret")

		_, errWrongPass := uc.Login(ctx, "admin@example.com", "wrong")
		_, errNoAdmin := uc.Login(ctx, "ghost@example.com", "secret")

		require.ErrorIs(t, errWrongPass, e.ErrInvalidCredentials)
		require.ErrorIs(t, errNoAdmin, e.ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	authCfg := &cfg.AuthCfg{SessionTTL: time.Hour}

	uc, adminRepo, _ := newAuthUCForTest(authCfg)
	seedAdmin(t, adminRepo, "admin@example.com", "secret")

	sid, err := uc.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, sid))
	assert.False(t, uc.ValidateSession(ctx, sid))

	// повторный logout той же сессии не является ошибкой
	assert.NoError(t, uc.Logout(ctx, sid))
}

func TestValidateSession(t *testing.T) {
	ctx := context.Background()

	uc, _, _ := newAuthUCForTest(&cfg.AuthCfg{})

	assert.False(t, uc.ValidateSession(ctx, ""))
	assert.False(t, uc.ValidateSession(ctx, "unknown-sid"))
}

func TestCreateInitialAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("bootstraps admin from configuration", func(t *testing.T) {
		uc, adminRepo, _ := newAuthUCForTest(&cfg.AuthCfg{
			AdminEmail:    "admin@example.com",
			AdminPassword: "secret",
			SessionTTL:    time.Hour,
		})

		require.NoError(t, uc.CreateInitialAdmin(ctx))

		admin, err := adminRepo.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		// пароль хранится только хешем
		assert.NotEqual(t, "secret", admin.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret")))

		_, err = uc.Login(ctx, "admin@example.com", "secret")
		assert.NoError(t, err)
	})

	t.Run("second bootstrap is a conflict", func(t *testing.T) {
		uc, _, _ := newAuthUCForTest(&cfg.AuthCfg{
			AdminEmail:    "admin@example.com",
			AdminPassword: "secret",
		})

		require.NoError(t, uc.CreateInitialAdmin(ctx))
		require.ErrorIs(t, uc.CreateInitialAdmin(ctx), e.ErrAdminExists)
	})

	t.Run("missing configuration rejected", func(t *testing.T) {
		uc, _, _ := newAuthUCForTest(&cfg.AuthCfg{})

		require.ErrorIs(t, uc.CreateInitialAdmin(ctx), e.ErrAdminNotConfigured)
	})
}

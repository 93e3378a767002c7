package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	sessionTTL  time.Duration
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, sessionTTL time.Duration, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login
//
//	@Summary		Вход администратора
//	@Description	Проверяет учётные данные и выдаёт HttpOnly-куку с сессией
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Учётные данные"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	sid, err := a.authUsecase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		a.logger.Warnf("login failed for %s: %s", req.Email, err.Error())
		WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(a.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	WriteSuccess(w, http.StatusOK, &MessageResponse{Message: "Login successful"})
}

// logout
//
//	@Summary	Выход администратора
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Router		/auth/logout [post]
func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := a.authUsecase.Logout(r.Context(), cookie.Value); err != nil {
			a.logger.Warnf("logout failed: %s", err.Error())
			WriteError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	WriteSuccess(w, http.StatusOK, &MessageResponse{Message: "Logout successful"})
}

// createAdmin
//
//	@Summary		Создание первоначального администратора
//	@Description	Одноразовый бутстрап администратора из переменных окружения
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	MessageResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/auth/create-admin [post]
func (a *AuthHandler) createAdmin(w http.ResponseWriter, r *http.Request) {
	if err := a.authUsecase.CreateInitialAdmin(r.Context()); err != nil {
		a.logger.Warnf("create admin failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &MessageResponse{Message: "Admin created successfully"})
}

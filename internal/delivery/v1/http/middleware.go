package http

import (
	"net/http"
	"strings"

	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
)

const sessionCookieName = "session_id"

// AuthMiddleware пропускает запрос, если у клиента живая сессия
// или статический админский bearer-токен. Иначе 401.
type AuthMiddleware struct {
	authUC     usecase.AuthUC
	adminToken string
	logger     logger.Logger
}

func NewAuthMiddleware(authUC usecase.AuthUC, adminToken string, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     authUC,
		adminToken: adminToken,
		logger:     logger,
	}
}

func (m *AuthMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.isAuthorized(r) {
			next.ServeHTTP(w, r)
			return
		}

		m.logger.Warnf("unauthorized request: %s %s", r.Method, r.URL.Path)
		WriteError(w, e.ErrAdminRequired)
	})
}

func (m *AuthMiddleware) isAuthorized(r *http.Request) bool {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if m.authUC.ValidateSession(r.Context(), cookie.Value) {
			return true
		}
	}

	// Токен сравнивается точным совпадением строки.
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return m.adminToken != "" && token == m.adminToken
	}

	return false
}

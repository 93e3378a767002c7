package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh911911/Furniture-B/internal/usecase"
)

type fakeAuthUC struct {
	validSessions map[string]bool
}

func (f *fakeAuthUC) Login(ctx context.Context, email, password string) (string, error) {
	return "", nil
}

func (f *fakeAuthUC) Logout(ctx context.Context, sid string) error { return nil }

func (f *fakeAuthUC) ValidateSession(ctx context.Context, sid string) bool {
	return f.validSessions[sid]
}

func (f *fakeAuthUC) CreateInitialAdmin(ctx context.Context) error { return nil }

var _ usecase.AuthUC = (*fakeAuthUC)(nil)

func newAuthMiddlewareForTest(adminToken string, validSessions ...string) *AuthMiddleware {
	sessions := make(map[string]bool)
	for _, sid := range validSessions {
		sessions[sid] = true
	}
	return NewAuthMiddleware(&fakeAuthUC{validSessions: sessions}, adminToken, nopLogger{})
}

func serveProtected(t *testing.T, mw *AuthMiddleware, mutate func(r *http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	handler := mw.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	if mutate != nil {
		mutate(r)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code == http.StatusOK {
		require.True(t, called)
	} else {
		require.False(t, called)
	}
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid session cookie passes", func(t *testing.T) {
		mw := newAuthMiddlewareForTest("token-123", "sid-1")

		w := serveProtected(t, mw, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sid-1"})
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("stale cookie with valid bearer token passes", func(t *testing.T) {
		mw := newAuthMiddlewareForTest("token-123")

		w := serveProtected(t, mw, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired"})
			r.Header.Set("Authorization", "Bearer token-123")
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong bearer token rejected", func(t *testing.T) {
		mw := newAuthMiddlewareForTest("token-123")

		w := serveProtected(t, mw, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer nope")
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty configured token never matches", func(t *testing.T) {
		mw := newAuthMiddlewareForTest("")

		w := serveProtected(t, mw, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer ")
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no credentials returns 401 with message", func(t *testing.T) {
		mw := newAuthMiddlewareForTest("token-123")

		w := serveProtected(t, mw, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Admin access required", body.Message)
	})
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

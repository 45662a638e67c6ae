package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type mockAuthenticator struct {
	validToken string
	user       *domain.User
	err        error
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if token == m.validToken {
		return m.user, nil
	}
	return nil, assert.AnError
}

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func echoUserHandler(t *testing.T, wantUser bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if wantUser {
			require.True(t, ok)
			require.NotNil(t, user)
		} else {
			require.False(t, ok)
		}
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	auth := &mockAuthenticator{validToken: "good-token", user: &domain.User{ID: 10}}
	handler := Auth(auth, nopLogger{})(echoUserHandler(t, true))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_RejectsMissingAndMalformedHeader(t *testing.T) {
	auth := &mockAuthenticator{validToken: "good-token", user: &domain.User{ID: 10}}
	handler := Auth(auth, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	headers := []string{"", "good-token", "Basic good-token", "Bearer"}
	for _, header := range headers {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header=%q", header)
		assert.Contains(t, rec.Body.String(), "требуется авторизация")
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	auth := &mockAuthenticator{validToken: "good-token"}
	handler := Auth(auth, nopLogger{})(echoUserHandler(t, true))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuth_PassesThroughWithoutToken(t *testing.T) {
	auth := &mockAuthenticator{validToken: "good-token", user: &domain.User{ID: 10}}
	handler := OptionalAuth(auth)(echoUserHandler(t, false))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/masters", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_AttachesUserWhenTokenValid(t *testing.T) {
	auth := &mockAuthenticator{validToken: "good-token", user: &domain.User{ID: 10}}
	handler := OptionalAuth(auth)(echoUserHandler(t, true))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/masters", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_BadTokenStaysAnonymous(t *testing.T) {
	auth := &mockAuthenticator{validToken: "good-token"}
	handler := OptionalAuth(auth)(echoUserHandler(t, false))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/masters", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type contextKey string

const userContextKey contextKey = "auth.user"

// Authenticator проверяет сессионный токен и возвращает пользователя
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет заголовок Authorization: Bearer <token>
// и кладёт пользователя в контекст запроса
func Auth(auth Authenticator, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logger.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// OptionalAuth пытается аутентифицировать запрос, но пропускает его дальше
// и без токена. Используется для публичных ручек с персонализацией
func OptionalAuth(auth Authenticator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if user, err := auth.Authenticate(r.Context(), token); err == nil {
					r = r.WithContext(WithUser(r.Context(), user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext достаёт пользователя, положенного Auth middleware
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

// WithUser кладёт пользователя в контекст запроса.
// Экспортирован для тестов защищённых хендлеров
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

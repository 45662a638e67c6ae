package auth

import (
	"context"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

// UserRepository контракт репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	CreateToken(ctx context.Context, token *domain.SessionToken) error
	GetToken(ctx context.Context, token string) (*domain.SessionToken, error)
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

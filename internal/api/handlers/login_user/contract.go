package login_user

import (
	"context"

	authService "github.com/beepkz/BEEP-BookingService/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*authService.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

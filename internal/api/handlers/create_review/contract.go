package create_review

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type MastersService interface {
	CreateReview(ctx context.Context, userID, masterID int64, rating int, comment string) (*domain.Review, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

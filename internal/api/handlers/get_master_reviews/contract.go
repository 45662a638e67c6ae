package get_master_reviews

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type MastersService interface {
	GetReviews(ctx context.Context, masterID int64) ([]domain.Review, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_masters

import (
	"context"

	mastersService "github.com/beepkz/BEEP-BookingService/internal/service/masters"
)

type MastersService interface {
	GetMasters(ctx context.Context, userID *int64) ([]mastersService.MasterView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_services

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type CatalogService interface {
	GetServices(ctx context.Context, categoryID *int64) ([]domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_cars

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type CatalogService interface {
	GetCars(ctx context.Context) ([]domain.Car, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

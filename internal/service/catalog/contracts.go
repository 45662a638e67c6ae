package catalog

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

// CatalogRepository контракт репозитория справочников
type CatalogRepository interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetServices(ctx context.Context, categoryID *int64) ([]domain.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetCars(ctx context.Context) ([]domain.Car, error)
	GetCarByID(ctx context.Context, id int64) (*domain.Car, error)
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

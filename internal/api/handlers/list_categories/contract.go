package list_categories

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type CatalogService interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

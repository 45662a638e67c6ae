package calculate_price

import (
	"context"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetCarByID(ctx context.Context, id int64) (*domain.Car, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	// GetScheduleForDay получает расписание мастера на день недели (0=понедельник)
	GetScheduleForDay(ctx context.Context, masterID int64, dayOfWeek int) (*domain.ScheduleEntry, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBookedTimes получает времена неотменённых записей мастера на дату
	GetBookedTimes(ctx context.Context, masterID int64, date time.Time) ([]types.TimeString, error)
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

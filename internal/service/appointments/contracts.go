package appointments

import (
	"context"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// AppointmentRepository контракт репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Appointment, error)
	Update(ctx context.Context, id int64, date time.Time, t types.TimeString, comment string) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

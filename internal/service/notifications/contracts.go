package notifications

import (
	"context"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

// NotificationRepository контракт репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ExistsForAppointment(ctx context.Context, userID, appointmentID int64) (bool, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

// AppointmentReader читает записи для рассылки напоминаний
type AppointmentReader interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

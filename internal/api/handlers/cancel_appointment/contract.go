package cancel_appointment

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, userID, appointmentID int64) (*domain.Appointment, error)
}

// Notifier уведомляет пользователя о смене статуса записи
type Notifier interface {
	NotifyStatusChange(ctx context.Context, appt *domain.Appointment)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

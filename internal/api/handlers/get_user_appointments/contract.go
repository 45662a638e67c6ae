package get_user_appointments

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type AppointmentsService interface {
	GetUserAppointments(ctx context.Context, userID int64) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

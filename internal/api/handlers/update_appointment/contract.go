package update_appointment

import (
	"context"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

type AppointmentsService interface {
	Update(ctx context.Context, userID, appointmentID int64, date time.Time, t types.TimeString, comment string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

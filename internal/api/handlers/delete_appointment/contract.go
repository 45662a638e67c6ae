package delete_appointment

import "context"

type AppointmentsService interface {
	Delete(ctx context.Context, userID, appointmentID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package flow

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
)

// APIClient контракт клиента API, используемого флоу бронирования
type APIClient interface {
	Categories(ctx context.Context) ([]apiclient.Category, error)
	Services(ctx context.Context, categoryID int64) ([]apiclient.Service, error)
	Cars(ctx context.Context) ([]apiclient.Car, error)
	Masters(ctx context.Context) ([]apiclient.Master, error)
	AvailableSlots(ctx context.Context, masterID int64, date string) (*apiclient.Slots, error)
	CalculatePrice(ctx context.Context, serviceID, carID int64) (*apiclient.Price, error)
	CreateAppointment(ctx context.Context, req apiclient.CreateAppointmentRequest) (*apiclient.Appointment, error)
	Appointments(ctx context.Context) ([]apiclient.Appointment, error)
	Appointment(ctx context.Context, id int64) (*apiclient.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, req apiclient.UpdateAppointmentRequest) (*apiclient.Appointment, error)
	CancelAppointment(ctx context.Context, id int64) (*apiclient.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
	AddFavorite(ctx context.Context, masterID int64) error
	RemoveFavorite(ctx context.Context, masterID int64) error
	HasToken() bool
}

// Notifier показывает пользователю временное сообщение
type Notifier interface {
	Notify(message string)
}

// Confirmer задаёт пользователю блокирующий вопрос да/нет
type Confirmer interface {
	Confirm(prompt string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package flow

import (
	"context"
	"sync"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
)

// Моки для тестов флоу

type fakeClient struct {
	mu    sync.Mutex
	calls []string

	hasToken bool

	categories []apiclient.Category
	services   []apiclient.Service
	cars       []apiclient.Car
	masters    []apiclient.Master

	categoriesErr error
	mastersErr    error

	slotsFn func(masterID int64, date string) (*apiclient.Slots, error)

	priceResult *apiclient.Price
	priceErr    error

	createResult *apiclient.Appointment
	createErr    error
	createReq    apiclient.CreateAppointmentRequest

	appointments    []apiclient.Appointment
	appointmentsErr error

	updateReq apiclient.UpdateAppointmentRequest
	cancelErr error
	deleteErr error

	favoriteErr error
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeClient) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Categories(ctx context.Context) ([]apiclient.Category, error) {
	f.record("Categories")
	return f.categories, f.categoriesErr
}

func (f *fakeClient) Services(ctx context.Context, categoryID int64) ([]apiclient.Service, error) {
	f.record("Services")
	return f.services, nil
}

func (f *fakeClient) Cars(ctx context.Context) ([]apiclient.Car, error) {
	f.record("Cars")
	return f.cars, nil
}

func (f *fakeClient) Masters(ctx context.Context) ([]apiclient.Master, error) {
	f.record("Masters")
	return f.masters, f.mastersErr
}

func (f *fakeClient) AvailableSlots(ctx context.Context, masterID int64, date string) (*apiclient.Slots, error) {
	f.record("AvailableSlots:" + date)
	if f.slotsFn != nil {
		return f.slotsFn(masterID, date)
	}
	return &apiclient.Slots{Date: date}, nil
}

func (f *fakeClient) CalculatePrice(ctx context.Context, serviceID, carID int64) (*apiclient.Price, error) {
	f.record("CalculatePrice")
	return f.priceResult, f.priceErr
}

func (f *fakeClient) CreateAppointment(ctx context.Context, req apiclient.CreateAppointmentRequest) (*apiclient.Appointment, error) {
	f.record("CreateAppointment")
	f.mu.Lock()
	f.createReq = req
	f.mu.Unlock()
	return f.createResult, f.createErr
}

func (f *fakeClient) Appointments(ctx context.Context) ([]apiclient.Appointment, error) {
	f.record("Appointments")
	return f.appointments, f.appointmentsErr
}

func (f *fakeClient) Appointment(ctx context.Context, id int64) (*apiclient.Appointment, error) {
	f.record("Appointment")
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return &f.appointments[i], nil
		}
	}
	return nil, &apiclient.APIError{StatusCode: 404, Message: "запись не найдена"}
}

func (f *fakeClient) UpdateAppointment(ctx context.Context, id int64, req apiclient.UpdateAppointmentRequest) (*apiclient.Appointment, error) {
	f.record("UpdateAppointment")
	f.mu.Lock()
	f.updateReq = req
	f.mu.Unlock()
	return &apiclient.Appointment{ID: id, Date: req.Date, Time: req.Time}, nil
}

func (f *fakeClient) CancelAppointment(ctx context.Context, id int64) (*apiclient.Appointment, error) {
	f.record("CancelAppointment")
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return &apiclient.Appointment{ID: id, Status: apiclient.StatusCancelled}, nil
}

func (f *fakeClient) DeleteAppointment(ctx context.Context, id int64) error {
	f.record("DeleteAppointment")
	return f.deleteErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, masterID int64) error {
	f.record("AddFavorite")
	return f.favoriteErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, masterID int64) error {
	f.record("RemoveFavorite")
	return f.favoriteErr
}

func (f *fakeClient) HasToken() bool {
	return f.hasToken
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeNotifier) Notify(message string) {
	f.mu.Lock()
	f.messages = append(f.messages, message)
	f.mu.Unlock()
}

func (f *fakeNotifier) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}

type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (f *fakeConfirmer) Confirm(prompt string) bool {
	f.asked = append(f.asked, prompt)
	return f.answer
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestSession(client *fakeClient) (*Session, *fakeNotifier, *fakeConfirmer) {
	notifier := &fakeNotifier{}
	confirmer := &fakeConfirmer{answer: true}
	return NewSession(client, notifier, confirmer, nopLogger{}), notifier, confirmer
}

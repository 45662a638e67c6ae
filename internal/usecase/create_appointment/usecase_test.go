package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	masterRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/master"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

type mockMasterRepo struct {
	master    *domain.Master
	masterErr error
}

func (m *mockMasterRepo) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	return m.master, m.masterErr
}

type mockCatalogRepo struct {
	service    *domain.Service
	serviceErr error
}

func (m *mockCatalogRepo) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	return m.service, m.serviceErr
}

type mockAppointmentRepo struct {
	booked  []types.TimeString
	created *domain.Appointment
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	m.created = appt
	result := *appt
	result.ID = 42
	return &result, nil
}

func (m *mockAppointmentRepo) GetBookedTimes(ctx context.Context, masterID int64, date time.Time) ([]types.TimeString, error) {
	return m.booked, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(appointments *mockAppointmentRepo) *UseCase {
	uc := NewUseCase(
		&mockMasterRepo{master: &domain.Master{ID: 7}},
		&mockCatalogRepo{service: &domain.Service{ID: 3}},
		appointments,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    1,
		MasterID:  7,
		ServiceID: 3,
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:      "14:00",
		Comment:   "  стучит подвеска  ",
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	appointments := &mockAppointmentRepo{}
	uc := newTestUseCase(appointments)

	appt, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), appt.ID)
	assert.Equal(t, domain.StatusPending, appointments.created.Status)
	assert.Equal(t, "стучит подвеска", appointments.created.Comment)
}

func TestExecute_SlotTaken(t *testing.T) {
	appointments := &mockAppointmentRepo{booked: []types.TimeString{"13:00", "14:00"}}
	uc := newTestUseCase(appointments)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, appointments.created)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{})
	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayAllowed(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{})
	req := validRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"без пользователя", func(req *Request) { req.UserID = 0 }},
		{"без мастера", func(req *Request) { req.MasterID = 0 }},
		{"без услуги", func(req *Request) { req.ServiceID = 0 }},
		{"без даты", func(req *Request) { req.Date = time.Time{} }},
		{"кривое время", func(req *Request) { req.Time = "25:99" }},
		{"слишком длинный комментарий", func(req *Request) {
			for len(req.Comment) <= domain.MaxCommentLength {
				req.Comment += "очень длинный комментарий "
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_MasterNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockMasterRepo{masterErr: masterRepo.ErrMasterNotFound},
		&mockCatalogRepo{service: &domain.Service{ID: 3}},
		&mockAppointmentRepo{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrMasterNotFound)
}

package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	apptRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/appointment"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

type mockRepo struct {
	byID map[int64]*domain.Appointment

	updatedStatus domain.AppointmentStatus
	deleted       []int64
}

func newMockRepo(appts ...*domain.Appointment) *mockRepo {
	m := &mockRepo{byID: make(map[int64]*domain.Appointment)}
	for _, a := range appts {
		m.byID[a.ID] = a
	}
	return m
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if a, ok := m.byID[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (m *mockRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range m.byID {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockRepo) Update(ctx context.Context, id int64, date time.Time, t types.TimeString, comment string) error {
	a, ok := m.byID[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	a.Date = date
	a.Time = t
	a.Comment = comment
	return nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := m.byID[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	a.Status = status
	m.updatedStatus = status
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func appointment(id, userID int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:     id,
		UserID: userID,
		Status: status,
		Date:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:   "14:00",
	}
}

func TestGetByID_ForeignAppointmentLooksMissing(t *testing.T) {
	repo := newMockRepo(appointment(1, 10, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 20, 1)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_StatusGating(t *testing.T) {
	tests := []struct {
		status  domain.AppointmentStatus
		wantErr error
	}{
		{domain.StatusPending, nil},
		{domain.StatusConfirmed, nil},
		{domain.StatusCompleted, ErrNotCancellable},
		{domain.StatusCancelled, ErrNotCancellable},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			repo := newMockRepo(appointment(1, 10, tt.status))
			svc := NewService(repo, nopLogger{})

			appt, err := svc.Cancel(context.Background(), 10, 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, appt.Status)
			assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
		})
	}
}

func TestUpdate_OnlyActiveStatuses(t *testing.T) {
	repo := newMockRepo(appointment(1, 10, domain.StatusCompleted))
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 10, 1,
		time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), "11:00", "")

	assert.ErrorIs(t, err, ErrNotUpdatable)
}

func TestUpdate_Reschedules(t *testing.T) {
	repo := newMockRepo(appointment(1, 10, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	newDate := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), 10, 1, newDate, "11:00", "перенос")

	require.NoError(t, err)
	assert.Equal(t, newDate, updated.Date)
	assert.Equal(t, types.TimeString("11:00"), updated.Time)
	assert.Equal(t, "перенос", updated.Comment)
}

func TestUpdate_RequiresDateAndTime(t *testing.T) {
	repo := newMockRepo(appointment(1, 10, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 10, 1, time.Time{}, "11:00", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 10, 1, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_OnlyCancelled(t *testing.T) {
	repo := newMockRepo(
		appointment(1, 10, domain.StatusPending),
		appointment(2, 10, domain.StatusCancelled),
	)
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrNotDeletable)

	err = svc.Delete(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, repo.deleted)
}

package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	notifRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/notification"
	"github.com/beepkz/BEEP-BookingService/pkg/ptr"
)

type mockNotificationRepo struct {
	created     []*domain.Notification
	existing    map[int64]bool
	createErr   error
	markReadErr error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, n)
	return n, nil
}

func (m *mockNotificationRepo) ExistsForAppointment(ctx context.Context, userID, appointmentID int64) (bool, error) {
	return m.existing[appointmentID], nil
}

func (m *mockNotificationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id, userID int64) error {
	return m.markReadErr
}

type mockAppointmentReader struct {
	appts []*domain.Appointment
}

func (m *mockAppointmentReader) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return m.appts, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestNotifyStatusChange_UsesFallbackServiceName(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, &mockAppointmentReader{}, nopLogger{})

	svc.NotifyStatusChange(context.Background(), &domain.Appointment{
		ID:     42,
		UserID: 10,
		Status: domain.StatusCancelled,
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, domain.NotificationStatus, n.Type)
	assert.Equal(t, int64(42), n.RelatedID)
	assert.Contains(t, n.Message, "услугу")
	assert.Contains(t, n.Message, "cancelled")
}

func TestNotifyStatusChange_RepositoryErrorSwallowed(t *testing.T) {
	repo := &mockNotificationRepo{createErr: assert.AnError}
	svc := NewService(repo, &mockAppointmentReader{}, nopLogger{})

	// Не должно паниковать и не возвращает ошибку
	svc.NotifyStatusChange(context.Background(), &domain.Appointment{ID: 42, UserID: 10})
}

func TestSendReminders_SkipsAlreadyNotified(t *testing.T) {
	repo := &mockNotificationRepo{existing: map[int64]bool{1: true}}
	reader := &mockAppointmentReader{
		appts: []*domain.Appointment{
			{ID: 1, UserID: 10, Time: "10:00"},
			{ID: 2, UserID: 11, Time: "14:00",
				ServiceName: ptr.Ptr("Замена масла"),
				MasterName:  ptr.Ptr("Алексею Петрову")},
		},
	}
	svc := NewService(repo, reader, nopLogger{})

	require.NoError(t, svc.SendReminders(context.Background()))

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, int64(11), n.UserID)
	assert.Equal(t, domain.NotificationReminder, n.Type)
	assert.Contains(t, n.Message, "14:00")
	assert.Contains(t, n.Message, "Замена масла")
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := &mockNotificationRepo{markReadErr: notifRepo.ErrNotificationNotFound}
	svc := NewService(repo, &mockAppointmentReader{}, nopLogger{})

	err := svc.MarkRead(context.Background(), 10, 99)

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

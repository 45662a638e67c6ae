package appointment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

var appointmentRows = []string{
	"id", "user_id", "master_id", "service_id", "date", "time",
	"status", "comment", "service_name", "master_name", "created_at", "updated_at",
}

func TestGetByID_Found(t *testing.T) {
	repo, mock := newMockRepo(t)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM appointments a LEFT JOIN services s .+ LEFT JOIN masters m .+ WHERE a\.id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(appointmentRows).
			AddRow(1, 10, 7, 3, date, "14:00", "pending", "стучит подвеска", "Замена масла", "Алексей Петров", now, now))

	appt, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(10), appt.UserID)
	assert.Equal(t, types.TimeString("14:00"), appt.Time)
	assert.Equal(t, domain.StatusPending, appt.Status)
	require.NotNil(t, appt.ServiceName)
	assert.Equal(t, "Замена масла", *appt.ServiceName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM appointments a`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(appointmentRows))

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookedTimes_ExcludesCancelled(t *testing.T) {
	repo, mock := newMockRepo(t)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT time FROM appointments WHERE .+ status <> \$\d+ ORDER BY time ASC`).
		WithArgs(date, int64(7), string(domain.StatusCancelled)).
		WillReturnRows(sqlmock.NewRows([]string{"time"}).AddRow("10:00").AddRow("14:00"))

	times, err := repo.GetBookedTimes(context.Background(), 7, date)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "14:00"}, times)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ReturnsGeneratedFields(t *testing.T) {
	repo, mock := newMockRepo(t)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	mock.ExpectQuery(`INSERT INTO appointments .+ RETURNING id, status, created_at, updated_at`).
		WithArgs(int64(10), int64(7), int64(3), date, types.TimeString("14:00"), domain.StatusPending, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at", "updated_at"}).
			AddRow(42, "pending", now, now))

	appt, err := repo.Create(context.Background(), &domain.Appointment{
		UserID:    10,
		MasterID:  7,
		ServiceID: 3,
		Date:      date,
		Time:      "14:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), appt.ID)
	assert.Equal(t, domain.StatusPending, appt.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NoRowsMeansNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE appointments SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(domain.StatusCancelled, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, domain.StatusCancelled)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM appointments WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID_ScanError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM appointments a`).
		WithArgs(int64(10)).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByUserID(context.Background(), 10)

	assert.ErrorIs(t, err, ErrExecQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

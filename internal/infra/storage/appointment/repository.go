package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/psqlbuilder"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// Колонки записи вместе с денормализованными именами услуги и мастера
var appointmentColumns = []string{
	"a.id",
	"a.user_id",
	"a.master_id",
	"a.service_id",
	"a.date",
	"a.time",
	"a.status",
	"a.comment",
	"s.name AS service_name",
	"m.name AS master_name",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий для работы с записями на услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись со статусом pending
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Insert("appointments").
		Columns("user_id", "master_id", "service_id", "date", "time", "status", "comment").
		Values(appt.UserID, appt.MasterID, appt.ServiceID, appt.Date, appt.Time, domain.StatusPending, appt.Comment).
		Suffix("RETURNING id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID с именами услуги и мастера
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByUserID получает все записи пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Appointment, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"a.user_id": userID}).
		OrderBy("a.date DESC, a.time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetBookedTimes возвращает времена активных записей мастера на дату
// Отменённые записи слот не занимают
func (r *Repository) GetBookedTimes(ctx context.Context, masterID int64, date time.Time) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("time").
		From("appointments").
		Where(squirrel.Eq{"master_id": masterID, "date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// GetByDate возвращает активные записи на дату (для рассылки напоминаний)
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"a.date": date}).
		Where(squirrel.Eq{"a.status": []domain.AppointmentStatus{domain.StatusPending, domain.StatusConfirmed}}).
		OrderBy("a.time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Update заменяет дату, время и комментарий записи
// master_id и service_id после создания не меняются
func (r *Repository) Update(ctx context.Context, id int64, date time.Time, t types.TimeString, comment string) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("date", date).
		Set("time", t).
		Set("comment", comment).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "Update", query, args)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "UpdateStatus", query, args)
}

// Delete физически удаляет запись
// Сервисный слой допускает удаление только отменённых записей
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "Delete", query, args)
}

func (r *Repository) exec(ctx context.Context, method, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("services s ON a.service_id = s.id").
		LeftJoin("masters m ON a.master_id = m.id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.MasterID,
		&appt.ServiceID,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&appt.Comment,
		&appt.ServiceName,
		&appt.MasterName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

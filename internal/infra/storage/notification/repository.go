package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/psqlbuilder"
)

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notification.repository: notification not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("notification.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("notification.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("notification.repository: failed to scan row")
)

// DBExecutor интерфейс для работы с БД
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Repository репозиторий уведомлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_id", "type", "title", "message", "related_id").
		Values(n.UserID, n.Type, n.Title, n.Message, n.RelatedID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return n, nil
}

// ExistsForAppointment проверяет, было ли уже отправлено напоминание по записи
// Защита от повторной рассылки при перезапуске планировщика
func (r *Repository) ExistsForAppointment(ctx context.Context, userID, appointmentID int64) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{
			"user_id":    userID,
			"type":       domain.NotificationReminder,
			"related_id": appointmentID,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForAppointment - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsForAppointment - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// GetByUserID возвращает уведомления пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]domain.Notification, error) {
	query, args, err := psqlbuilder.Select("id", "user_id", "type", "title", "message", "related_id", "is_read", "created_at").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.RelatedID, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkRead помечает уведомление пользователя прочитанным
func (r *Repository) MarkRead(ctx context.Context, id, userID int64) error {
	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

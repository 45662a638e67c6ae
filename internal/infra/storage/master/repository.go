package master

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для работы с БД
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// MasterWithStats мастер вместе с количеством отзывов
type MasterWithStats struct {
	domain.Master
	ReviewCount int
}

// Repository репозиторий мастеров: профили, расписание, отзывы, избранное
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var masterColumns = []string{
	"m.id", "m.user_id", "m.name", "m.email", "m.phone",
	"m.specialization", "m.rating", "m.address", "m.photo_url", "m.work_count",
	"m.created_at", "m.updated_at",
}

// GetAll возвращает всех мастеров с количеством отзывов
func (r *Repository) GetAll(ctx context.Context) ([]MasterWithStats, error) {
	columns := append(append([]string{}, masterColumns...), "COUNT(rv.id) AS review_count")

	query, args, err := psqlbuilder.Select(columns...).
		From("masters m").
		LeftJoin("reviews rv ON rv.master_id = m.id").
		GroupBy("m.id").
		OrderBy("m.rating DESC, m.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	masters := make([]MasterWithStats, 0)
	for rows.Next() {
		var m MasterWithStats
		err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.Email, &m.Phone,
			&m.Specialization, &m.Rating, &m.Address, &m.PhotoURL, &m.WorkCount,
			&m.CreatedAt, &m.UpdatedAt,
			&m.ReviewCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		masters = append(masters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return masters, nil
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters m").
		Where(squirrel.Eq{"m.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.Master
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&m.ID, &m.UserID, &m.Name, &m.Email, &m.Phone,
		&m.Specialization, &m.Rating, &m.Address, &m.PhotoURL, &m.WorkCount,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan master: %v", ErrScanRow, err)
	}

	return &m, nil
}

// GetScheduleForDay возвращает активное расписание мастера на день недели
// dayOfWeek: 0=понедельник ... 6=воскресенье
func (r *Repository) GetScheduleForDay(ctx context.Context, masterID int64, dayOfWeek int) (*domain.ScheduleEntry, error) {
	query, args, err := psqlbuilder.Select("id", "master_id", "day_of_week", "start_time", "end_time", "is_active").
		From("master_schedule").
		Where(squirrel.Eq{"master_id": masterID, "day_of_week": dayOfWeek, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForDay - build select query: %v", ErrBuildQuery, err)
	}

	var entry domain.ScheduleEntry
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID, &entry.MasterID, &entry.DayOfWeek,
		&entry.StartTime, &entry.EndTime, &entry.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForDay - scan schedule: %v", ErrScanRow, err)
	}

	return &entry, nil
}

// GetReviews возвращает отзывы о мастере с именами авторов, новые первыми
func (r *Repository) GetReviews(ctx context.Context, masterID int64) ([]domain.Review, error) {
	query, args, err := psqlbuilder.Select(
		"rv.id", "rv.master_id", "rv.user_id", "rv.rating", "rv.comment",
		"COALESCE(u.name, '') AS user_name", "rv.created_at",
	).
		From("reviews rv").
		LeftJoin("users u ON rv.user_id = u.id").
		Where(squirrel.Eq{"rv.master_id": masterID}).
		OrderBy("rv.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReviews - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReviews - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		err := rows.Scan(&rv.ID, &rv.MasterID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.UserName, &rv.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetReviews - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReviews - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// CreateReview создает отзыв и пересчитывает рейтинг мастера
func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query, args, err := psqlbuilder.Insert("reviews").
		Columns("master_id", "user_id", "rating", "comment").
		Values(review.MasterID, review.UserID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateReview - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateReview - execute insert: %v", ErrExecQuery, err)
	}

	// Рейтинг мастера — среднее по всем отзывам
	recalc := `UPDATE masters SET rating = (
		SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE master_id = $1
	), updated_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, recalc, review.MasterID); err != nil {
		return nil, fmt.Errorf("%w: CreateReview - recalculate rating: %v", ErrExecQuery, err)
	}

	return review, nil
}

// AddFavorite добавляет мастера в избранное пользователя, повторное добавление не ошибка
func (r *Repository) AddFavorite(ctx context.Context, userID, masterID int64) error {
	query, args, err := psqlbuilder.Insert("favorite_masters").
		Columns("user_id", "master_id").
		Values(userID, masterID).
		Suffix("ON CONFLICT (user_id, master_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddFavorite - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddFavorite - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveFavorite убирает мастера из избранного пользователя
func (r *Repository) RemoveFavorite(ctx context.Context, userID, masterID int64) error {
	query, args, err := psqlbuilder.Delete("favorite_masters").
		Where(squirrel.Eq{"user_id": userID, "master_id": masterID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveFavorite - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RemoveFavorite - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetFavoriteMasterIDs возвращает ID мастеров в избранном пользователя
func (r *Repository) GetFavoriteMasterIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	query, args, err := psqlbuilder.Select("master_id").
		From("favorite_masters").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFavoriteMasterIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFavoriteMasterIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetFavoriteMasterIDs - scan row: %v", ErrScanRow, err)
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetFavoriteMasterIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

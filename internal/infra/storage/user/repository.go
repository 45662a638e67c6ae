package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

// DBExecutor интерфейс для работы с БД
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Repository репозиторий пользователей и сессионных токенов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var userColumns = []string{
	"id", "name", "email", "phone", "photo_url", "password_hash", "created_at", "updated_at",
}

// Create создает нового пользователя
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "email", "phone", "password_hash").
		Values(u.Name, u.Email, u.Phone, u.PasswordHash).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return u, nil
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": email})
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, method string, where squirrel.Eq) (*domain.User, error) {
	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var u domain.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PhotoURL, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, method, err)
	}

	return &u, nil
}

// CreateToken сохраняет сессионный токен
func (r *Repository) CreateToken(ctx context.Context, token *domain.SessionToken) error {
	query, args, err := psqlbuilder.Insert("session_tokens").
		Columns("token", "user_id", "expires_at").
		Values(token.Token, token.UserID, token.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateToken - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateToken - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetToken получает сессионный токен
func (r *Repository) GetToken(ctx context.Context, token string) (*domain.SessionToken, error) {
	query, args, err := psqlbuilder.Select("token", "user_id", "expires_at", "created_at").
		From("session_tokens").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetToken - build select query: %v", ErrBuildQuery, err)
	}

	var st domain.SessionToken
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&st.Token, &st.UserID, &st.ExpiresAt, &st.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetToken - scan token: %v", ErrScanRow, err)
	}

	return &st, nil
}

// DeleteExpiredTokens удаляет протухшие токены, возвращает количество удалённых
func (r *Repository) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete("session_tokens").
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredTokens - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredTokens - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredTokens - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

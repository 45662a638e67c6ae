package catalog

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

// Repository репозиторий справочников: категории, услуги, автомобили
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCategories возвращает все категории услуг
func (r *Repository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	query, args, err := psqlbuilder.Select("id", "name", "description", "created_at").
		From("categories").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetServices возвращает услуги, опционально фильтруя по категории
func (r *Repository) GetServices(ctx context.Context, categoryID *int64) ([]domain.Service, error) {
	builder := psqlbuilder.Select(
		"id", "category_id", "name", "description",
		"base_price", "min_price", "max_price", "duration_minutes", "created_at",
	).
		From("services").
		OrderBy("id ASC")

	if categoryID != nil {
		builder = builder.Where(squirrel.Eq{"category_id": *categoryID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		err := rows.Scan(
			&s.ID, &s.CategoryID, &s.Name, &s.Description,
			&s.BasePrice, &s.MinPrice, &s.MaxPrice, &s.DurationMinutes, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id", "category_id", "name", "description",
		"base_price", "min_price", "max_price", "duration_minutes", "created_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Description,
		&s.BasePrice, &s.MinPrice, &s.MaxPrice, &s.DurationMinutes, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetCars возвращает каталог автомобилей
func (r *Repository) GetCars(ctx context.Context) ([]domain.Car, error) {
	query, args, err := psqlbuilder.Select("id", "brand", "model", "year", "type").
		From("cars").
		OrderBy("brand ASC, model ASC, year ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCars - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCars - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]domain.Car, 0)
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Type); err != nil {
			return nil, fmt.Errorf("%w: GetCars - scan row: %v", ErrScanRow, err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCars - rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}

// GetCarByID получает автомобиль по ID
func (r *Repository) GetCarByID(ctx context.Context, id int64) (*domain.Car, error) {
	query, args, err := psqlbuilder.Select("id", "brand", "model", "year", "type").
		From("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCarByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Car
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Type)
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCarByID - scan car: %v", ErrScanRow, err)
	}

	return &c, nil
}

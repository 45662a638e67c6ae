package masters

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	masterRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/master"
)

// MasterRepository контракт репозитория мастеров
type MasterRepository interface {
	GetAll(ctx context.Context) ([]masterRepo.MasterWithStats, error)
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	GetReviews(ctx context.Context, masterID int64) ([]domain.Review, error)
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	AddFavorite(ctx context.Context, userID, masterID int64) error
	RemoveFavorite(ctx context.Context, userID, masterID int64) error
	GetFavoriteMasterIDs(ctx context.Context, userID int64) (map[int64]bool, error)
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package masters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	masterRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/master"
)

// Service сервис мастеров: каталог, отзывы, избранное
type Service struct {
	repo   MasterRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(repo MasterRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// MasterView мастер, обогащённый статистикой для выдачи наружу
type MasterView struct {
	domain.Master
	ReviewCount int
	IsVerified  bool
	IsFavorite  bool
}

// GetMasters возвращает всех мастеров с отзывами и флагами верификации.
// userID != nil добавляет персональный флаг избранного
func (s *Service) GetMasters(ctx context.Context, userID *int64) ([]MasterView, error) {
	withStats, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetMasters: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetMasters - repository error: %v", ErrInternal, err)
	}

	var favorites map[int64]bool
	if userID != nil {
		favorites, err = s.repo.GetFavoriteMasterIDs(ctx, *userID)
		if err != nil {
			s.logger.Error("GetMasters: failed to load favorites for user_id=%d: %v", *userID, err)
			return nil, fmt.Errorf("%w: GetMasters - load favorites: %v", ErrInternal, err)
		}
	}

	views := make([]MasterView, 0, len(withStats))
	for _, m := range withStats {
		views = append(views, MasterView{
			Master:      m.Master,
			ReviewCount: m.ReviewCount,
			IsVerified:  m.Master.IsVerified(m.ReviewCount),
			IsFavorite:  favorites[m.Master.ID],
		})
	}
	return views, nil
}

// GetMasterByID возвращает мастера по идентификатору
func (s *Service) GetMasterByID(ctx context.Context, id int64) (*domain.Master, error) {
	master, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			return nil, ErrMasterNotFound
		}
		s.logger.Error("GetMasterByID: repository error, master_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetMasterByID - repository error: %v", ErrInternal, err)
	}
	return master, nil
}

// GetReviews возвращает отзывы мастера, новые первыми
func (s *Service) GetReviews(ctx context.Context, masterID int64) ([]domain.Review, error) {
	if _, err := s.GetMasterByID(ctx, masterID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.GetReviews(ctx, masterID)
	if err != nil {
		s.logger.Error("GetReviews: repository error, master_id=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: GetReviews - repository error: %v", ErrInternal, err)
	}
	return reviews, nil
}

// CreateReview добавляет отзыв и пересчитывает рейтинг мастера
func (s *Service) CreateReview(ctx context.Context, userID, masterID int64, rating int, comment string) (*domain.Review, error) {
	if rating < domain.MinReviewRating || rating > domain.MaxReviewRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidReview, domain.MinReviewRating, domain.MaxReviewRating)
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment too long", ErrInvalidReview)
	}

	if _, err := s.GetMasterByID(ctx, masterID); err != nil {
		return nil, err
	}

	review, err := s.repo.CreateReview(ctx, &domain.Review{
		MasterID: masterID,
		UserID:   userID,
		Rating:   rating,
		Comment:  comment,
	})
	if err != nil {
		s.logger.Error("CreateReview: repository error, master_id=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: CreateReview - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReview: review created, review_id=%d, master_id=%d", review.ID, masterID)
	return review, nil
}

// AddFavorite добавляет мастера в избранное. Повторное добавление не ошибка
func (s *Service) AddFavorite(ctx context.Context, userID, masterID int64) error {
	if _, err := s.GetMasterByID(ctx, masterID); err != nil {
		return err
	}

	if err := s.repo.AddFavorite(ctx, userID, masterID); err != nil {
		s.logger.Error("AddFavorite: repository error, user_id=%d, master_id=%d: %v", userID, masterID, err)
		return fmt.Errorf("%w: AddFavorite - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddFavorite: user_id=%d, master_id=%d", userID, masterID)
	return nil
}

// RemoveFavorite убирает мастера из избранного. Удаление отсутствующего не ошибка
func (s *Service) RemoveFavorite(ctx context.Context, userID, masterID int64) error {
	if err := s.repo.RemoveFavorite(ctx, userID, masterID); err != nil {
		s.logger.Error("RemoveFavorite: repository error, user_id=%d, master_id=%d: %v", userID, masterID, err)
		return fmt.Errorf("%w: RemoveFavorite - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveFavorite: user_id=%d, master_id=%d", userID, masterID)
	return nil
}

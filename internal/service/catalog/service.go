package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	catalogRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/catalog"
)

// Service сервис справочников: категории, услуги, автомобили
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetCategories возвращает все категории услуг
func (s *Service) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		s.logger.Error("GetCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCategories - repository error: %v", ErrInternal, err)
	}
	return categories, nil
}

// GetServices возвращает услуги, опционально отфильтрованные по категории
func (s *Service) GetServices(ctx context.Context, categoryID *int64) ([]domain.Service, error) {
	services, err := s.repo.GetServices(ctx, categoryID)
	if err != nil {
		s.logger.Error("GetServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetServices - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// GetServiceByID возвращает услугу по идентификатору
func (s *Service) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	service, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetServiceByID: repository error, service_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetServiceByID - repository error: %v", ErrInternal, err)
	}
	return service, nil
}

// GetCars возвращает все автомобили справочника
func (s *Service) GetCars(ctx context.Context) ([]domain.Car, error) {
	cars, err := s.repo.GetCars(ctx)
	if err != nil {
		s.logger.Error("GetCars: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCars - repository error: %v", ErrInternal, err)
	}
	return cars, nil
}

// GetCarByID возвращает автомобиль по идентификатору
func (s *Service) GetCarByID(ctx context.Context, id int64) (*domain.Car, error) {
	car, err := s.repo.GetCarByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCarNotFound) {
			return nil, ErrCarNotFound
		}
		s.logger.Error("GetCarByID: repository error, car_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetCarByID - repository error: %v", ErrInternal, err)
	}
	return car, nil
}

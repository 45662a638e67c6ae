package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	catalogRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/catalog"
)

// UseCase use case расчёта стоимости услуги для конкретного автомобиля
type UseCase struct {
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчёта стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.PriceBreakdown, error) {
	// 1. Валидация входных данных
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.CarID <= 0 {
		return nil, fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	// 2. Получаем услугу
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CalculatePrice: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем автомобиль
	car, err := uc.catalogRepo.GetCarByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCarNotFound) {
			uc.logger.Warn("CalculatePrice: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 4. Применяем ценовые правила
	breakdown := buildBreakdown(service, car, car.Age(uc.timeProvider.Now()))

	uc.logger.Info("CalculatePrice: service=%d, car=%d, base=%.2f, final=%.2f",
		req.ServiceID, req.CarID, breakdown.BasePrice, breakdown.FinalPrice)

	return breakdown, nil
}

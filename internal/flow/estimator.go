package flow

import (
	"context"
	"fmt"
	"math"
)

const (
	msgServiceNotSelected = "сначала выберите услугу"
	msgCarNotSelected     = "сначала выберите автомобиль"
	msgEstimateFailed     = "не удалось рассчитать стоимость"
)

// Estimate результат расчёта стоимости, подготовленный к показу.
// Все суммы округлены до целых тенге - копейки пользователю не показываем
type Estimate struct {
	ServiceName string
	CarTitle    string
	CarAge      int
	CarType     string
	BasePrice   string
	FinalPrice  string
	MinPrice    string
	MaxPrice    string
	Details     []EstimateDetail
}

// EstimateDetail одна строка детализации расчёта
type EstimateDetail struct {
	Description string
	Amount      string
}

// EstimatePrice рассчитывает стоимость выбранной услуги для выбранного
// автомобиля. Без выбранных услуги и автомобиля запрос к API не делается.
// Ответ рендерится целиком либо не рендерится вовсе
func (s *Session) EstimatePrice(ctx context.Context) (*Estimate, error) {
	s.mu.Lock()
	serviceID := s.selectedServiceID
	carID := s.selectedCarID
	s.mu.Unlock()

	if serviceID == 0 {
		s.notifier.Notify(msgServiceNotSelected)
		return nil, &ValidationError{Message: msgServiceNotSelected}
	}
	if carID == 0 {
		s.notifier.Notify(msgCarNotSelected)
		return nil, &ValidationError{Message: msgCarNotSelected}
	}

	price, err := s.client.CalculatePrice(ctx, serviceID, carID)
	if err != nil {
		s.logger.Error("EstimatePrice: service_id=%d, car_id=%d: %v", serviceID, carID, err)
		s.notifier.Notify(msgEstimateFailed)
		return nil, err
	}

	est := &Estimate{
		ServiceName: price.ServiceName,
		CarTitle:    fmt.Sprintf("%s %s (%d)", price.CarBrand, price.CarModel, price.CarYear),
		CarAge:      price.CarAge,
		CarType:     price.CarType,
		BasePrice:   formatKZT(price.BasePrice),
		FinalPrice:  formatKZT(price.FinalPrice),
		MinPrice:    formatKZT(price.MinPrice),
		MaxPrice:    formatKZT(price.MaxPrice),
	}
	for _, d := range price.PriceDetails {
		est.Details = append(est.Details, EstimateDetail{
			Description: d.Description,
			Amount:      formatKZT(d.Amount),
		})
	}

	s.logger.Info("EstimatePrice: service_id=%d, car_id=%d, final=%s", serviceID, carID, est.FinalPrice)
	return est, nil
}

// formatKZT округляет сумму до целых тенге для показа пользователю.
// Само значение в расчётах не меняется
func formatKZT(amount float64) string {
	return fmt.Sprintf("%d KZT", int64(math.Round(amount)))
}

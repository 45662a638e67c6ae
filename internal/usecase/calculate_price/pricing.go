package calculate_price

import (
	"fmt"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

// buildBreakdown применяет ценовые правила последовательно:
// возраст автомобиля, затем класс. Каждое правило умножает текущую
// цену и добавляет строку с дельтой в детализацию
func buildBreakdown(service *domain.Service, car *domain.Car, carAge int) *domain.PriceBreakdown {
	price := service.BasePrice

	details := []domain.PriceDetail{
		{
			Description: "Базовая стоимость услуги",
			Amount:      service.BasePrice,
			IsAddition:  false,
		},
	}

	if carAge > domain.OldCarAgeYears {
		delta := price * (domain.OldCarMultiplier - 1)
		price *= domain.OldCarMultiplier
		details = append(details, domain.PriceDetail{
			Description: fmt.Sprintf("Надбавка за возраст автомобиля (старше %d лет)", domain.OldCarAgeYears),
			Amount:      delta,
			Multiplier:  domain.OldCarMultiplier,
			IsAddition:  true,
		})
	} else if carAge < domain.NewCarAgeYears {
		delta := price * (domain.NewCarMultiplier - 1)
		price *= domain.NewCarMultiplier
		details = append(details, domain.PriceDetail{
			Description: fmt.Sprintf("Скидка за новый автомобиль (младше %d лет)", domain.NewCarAgeYears),
			Amount:      delta,
			Multiplier:  domain.NewCarMultiplier,
			IsAddition:  true,
		})
	}

	switch car.Type {
	case domain.CarTypePremium:
		delta := price * (domain.PremiumMultiplier - 1)
		price *= domain.PremiumMultiplier
		details = append(details, domain.PriceDetail{
			Description: "Надбавка за класс Premium",
			Amount:      delta,
			Multiplier:  domain.PremiumMultiplier,
			IsAddition:  true,
		})
	case domain.CarTypeLuxury:
		delta := price * (domain.LuxuryMultiplier - 1)
		price *= domain.LuxuryMultiplier
		details = append(details, domain.PriceDetail{
			Description: "Надбавка за класс Luxury",
			Amount:      delta,
			Multiplier:  domain.LuxuryMultiplier,
			IsAddition:  true,
		})
	}

	// Итог зажимается в вилку услуги, детализация остаётся как есть
	final := clamp(price, service.MinPrice, service.MaxPrice)

	return &domain.PriceBreakdown{
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		CarBrand:     car.Brand,
		CarModel:     car.Model,
		CarYear:      car.Year,
		CarType:      car.Type,
		CarAge:       carAge,
		BasePrice:    service.BasePrice,
		FinalPrice:   final,
		MinPrice:     service.MinPrice,
		MaxPrice:     service.MaxPrice,
		PriceDetails: details,
	}
}

// clamp ограничивает цену вилкой [min, max]; нулевая граница означает её отсутствие
func clamp(price, min, max float64) float64 {
	if min > 0 && price < min {
		return min
	}
	if max > 0 && price > max {
		return max
	}
	return price
}

package calculate_price

import (
	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	ServiceID int64 `json:"service_id"`
	CarID     int64 `json:"car_id"`
}

// PriceDetailResponse строка детализации расчёта
type PriceDetailResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Multiplier  float64 `json:"multiplier,omitempty"`
	IsAddition  bool    `json:"is_addition"`
}

// PriceResponse HTTP response model
type PriceResponse struct {
	ServiceID    int64                 `json:"service_id"`
	ServiceName  string                `json:"service_name"`
	CarBrand     string                `json:"car_brand"`
	CarModel     string                `json:"car_model"`
	CarYear      int                   `json:"car_year"`
	CarType      string                `json:"car_type"`
	CarAge       int                   `json:"car_age"`
	BasePrice    float64               `json:"base_price"`
	FinalPrice   float64               `json:"final_price"`
	MinPrice     float64               `json:"min_price"`
	MaxPrice     float64               `json:"max_price"`
	PriceDetails []PriceDetailResponse `json:"price_details"`
}

// FromBreakdown конвертирует расчёт в HTTP response
func FromBreakdown(b *domain.PriceBreakdown) *PriceResponse {
	details := make([]PriceDetailResponse, 0, len(b.PriceDetails))
	for _, d := range b.PriceDetails {
		details = append(details, PriceDetailResponse{
			Description: d.Description,
			Amount:      d.Amount,
			Multiplier:  d.Multiplier,
			IsAddition:  d.IsAddition,
		})
	}

	return &PriceResponse{
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		CarBrand:     b.CarBrand,
		CarModel:     b.CarModel,
		CarYear:      b.CarYear,
		CarType:      b.CarType,
		CarAge:       b.CarAge,
		BasePrice:    b.BasePrice,
		FinalPrice:   b.FinalPrice,
		MinPrice:     b.MinPrice,
		MaxPrice:     b.MaxPrice,
		PriceDetails: details,
	}
}

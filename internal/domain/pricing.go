package domain

// Pricing rule thresholds and multipliers
// Правила ценообразования: возраст автомобиля и класс дают надбавки/скидки
const (
	OldCarAgeYears      = 10
	NewCarAgeYears      = 3
	OldCarMultiplier    = 1.2
	NewCarMultiplier    = 0.9
	PremiumMultiplier   = 1.5
	LuxuryMultiplier    = 2.0
)

// PriceDetail represents one line item of a price breakdown
type PriceDetail struct {
	Description string
	Amount      float64
	Multiplier  float64 // 0 если строка не множительная
	IsAddition  bool    // false только для базовой цены
}

// PriceBreakdown итоговый расчёт стоимости услуги для автомобиля
type PriceBreakdown struct {
	ServiceID    int64
	ServiceName  string
	CarBrand     string
	CarModel     string
	CarYear      int
	CarType      string
	CarAge       int
	BasePrice    float64
	FinalPrice   float64
	MinPrice     float64
	MaxPrice     float64
	PriceDetails []PriceDetail
}

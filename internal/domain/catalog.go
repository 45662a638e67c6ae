package domain

import "time"

// Category represents a service category
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// Service represents a bookable service within a category
type Service struct {
	ID              int64
	CategoryID      int64
	Name            string
	Description     string
	BasePrice       float64
	MinPrice        float64
	MaxPrice        float64
	DurationMinutes int
	CreatedAt       time.Time
}

// CarType classes used by pricing rules
const (
	CarTypeStandard = "Standard"
	CarTypePremium  = "Premium"
	CarTypeLuxury   = "Luxury"
)

// Car represents a catalog car model (справочник, не принадлежит пользователю)
type Car struct {
	ID    int64
	Brand string
	Model string
	Year  int
	Type  string
}

// Age возвращает возраст автомобиля в годах на указанный момент
func (c *Car) Age(now time.Time) int {
	age := now.Year() - c.Year
	if age < 0 {
		return 0
	}
	return age
}

// UserCar represents a car owned by a client account,
// отдельная сущность от каталожной Car
type UserCar struct {
	ID        int64
	UserID    int64
	Name      string
	Year      int
	Comment   string
	CreatedAt time.Time
}

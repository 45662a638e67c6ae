package domain

import (
	"time"

	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// Master represents a service provider account
type Master struct {
	ID             int64
	UserID         *int64 // NULL для мастеров, заведённых без аккаунта
	Name           string
	Email          string
	Phone          string
	Specialization string
	Rating         float64 // [0, 5]
	Address        *string
	PhotoURL       *string
	WorkCount      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Verification criteria for masters
const (
	VerificationMinReviews = 3
	VerificationMinRating  = 4.0
	VerificationMinWorks   = 2
)

// IsVerified returns true if the master meets any verification criterion:
// достаточно отзывов, высокий рейтинг или наработанное портфолио
func (m *Master) IsVerified(reviewCount int) bool {
	return reviewCount >= VerificationMinReviews ||
		m.Rating > VerificationMinRating ||
		m.WorkCount > VerificationMinWorks
}

// ScheduleEntry represents a master's working hours for one day of week
type ScheduleEntry struct {
	ID        int64
	MasterID  int64
	DayOfWeek int // 0=понедельник ... 6=воскресенье
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
}

// Review represents a user's review of a master
type Review struct {
	ID        int64
	MasterID  int64
	UserID    int64
	Rating    int // 1..5
	Comment   string
	UserName  string // denormalized for display
	CreatedAt time.Time
}

// Favorite links a user to a bookmarked master
type Favorite struct {
	ID        int64
	UserID    int64
	MasterID  int64
	CreatedAt time.Time
}

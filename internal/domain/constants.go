package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default master schedule, используется когда у мастера нет расписания на день
const (
	DefaultWorkdayStart = "08:00"
	DefaultWorkdayEnd   = "19:00"
	SlotStepMinutes     = 60
)

// Business validation constants
const (
	MinReviewRating  = 1
	MaxReviewRating  = 5
	MaxCommentLength = 500
)

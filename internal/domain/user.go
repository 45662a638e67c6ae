package domain

import "time"

// User represents a client account
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PhotoURL     *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionToken непрозрачный токен, выдаваемый при логине
// Клиент никогда не восстанавливает токен из email или других данных
type SessionToken struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the token is past its expiry
func (t *SessionToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// NotificationType вид уведомления
type NotificationType string

const (
	NotificationReminder NotificationType = "appointment_reminder"
	NotificationStatus   NotificationType = "appointment_status"
)

// Notification represents a message delivered to a user's notification feed
type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	Title     string
	Message   string
	RelatedID int64 // ID связанной записи (appointment)
	IsRead    bool
	CreatedAt time.Time
}

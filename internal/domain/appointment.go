package domain

import (
	"time"

	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booking of a master's service by a user
type Appointment struct {
	ID        int64
	UserID    int64
	MasterID  int64
	ServiceID int64
	Date      time.Time
	Time      types.TimeString
	Status    AppointmentStatus
	Comment   string

	// Denormalized for listings; источники могут отсутствовать после удаления
	ServiceName *string
	MasterName  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still blocks the master's slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can transition to cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeUpdated returns true if date/time/comment can still be edited
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeDeleted returns true if the appointment can be removed permanently
// Удаление разрешено только после отмены, история завершённых записей сохраняется
func (a *Appointment) CanBeDeleted() bool {
	return a.Status == StatusCancelled
}

// IsTerminal returns true if no further status transitions are possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// ValidStatuses все допустимые статусы записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, status := range ValidStatuses {
		if AppointmentStatus(s) == status {
			return true
		}
	}
	return false
}

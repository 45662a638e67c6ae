package create_appointment

import (
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	createAppointment "github.com/beepkz/BEEP-BookingService/internal/usecase/create_appointment"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	MasterID  int64  `json:"master_id"`
	ServiceID int64  `json:"service_id"`
	Date      string `json:"date"` // "2026-09-15"
	Time      string `json:"time"` // "10:00"
	Comment   string `json:"comment"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	MasterID    int64   `json:"master_id"`
	ServiceID   int64   `json:"service_id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	Comment     string  `json:"comment,omitempty"`
	ServiceName *string `json:"service_name,omitempty"`
	MasterName  *string `json:"master_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:    userID,
		MasterID:  r.MasterID,
		ServiceID: r.ServiceID,
		Date:      date,
		Time:      t,
		Comment:   r.Comment,
	}, nil
}

// FromDomain конвертирует запись в HTTP response
func FromDomain(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		MasterID:    a.MasterID,
		ServiceID:   a.ServiceID,
		Date:        a.Date.Format(domain.DateFormat),
		Time:        a.Time.String(),
		Status:      string(a.Status),
		Comment:     a.Comment,
		ServiceName: a.ServiceName,
		MasterName:  a.MasterName,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

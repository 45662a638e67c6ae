package get_appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	"github.com/beepkz/BEEP-BookingService/internal/domain"
	appointmentsService "github.com/beepkz/BEEP-BookingService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgAppointmentNotFound  = "запись не найдена"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// AppointmentResponse HTTP модель записи
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("GET /appointments/{appointmentId} - Invalid id: %s", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	appt, err := h.service.GetByID(r.Context(), user.ID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{appointmentId} - Not found: appointment_id=%d, user_id=%d",
				appointmentID, user.ID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /appointments/{appointmentId} - Failed to load: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AppointmentResponse{
		ID:          appt.ID,
		MasterID:    appt.MasterID,
		ServiceID:   appt.ServiceID,
		Date:        appt.Date.Format(domain.DateFormat),
		Time:        appt.Time.String(),
		Status:      string(appt.Status),
		Comment:     appt.Comment,
		ServiceName: appt.ServiceName,
		MasterName:  appt.MasterName,
		CreatedAt:   appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   appt.UpdatedAt.Format(time.RFC3339),
	})
}

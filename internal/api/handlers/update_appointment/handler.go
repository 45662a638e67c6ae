package update_appointment

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
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

const (
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateTime      = "некорректный формат даты или времени"
	msgAppointmentNotFound  = "запись не найдена"
	msgNotUpdatable         = "запись в текущем статусе нельзя изменить"
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

// UpdateAppointmentRequest HTTP request model
type UpdateAppointmentRequest struct {
	Date    string `json:"date"` // "2026-09-15"
	Time    string `json:"time"` // "10:00"
	Comment string `json:"comment"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	MasterID  int64  `json:"master_id"`
	ServiceID int64  `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	Comment   string `json:"comment,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PUT /appointments/{appointmentId} - Invalid id: %s", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{appointmentId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("PUT /appointments/{appointmentId} - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	t, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("PUT /appointments/{appointmentId} - Invalid time: %s", req.Time)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	appt, err := h.service.Update(r.Context(), user.ID, appointmentID, date, t, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{appointmentId} - Not found: appointment_id=%d, user_id=%d",
				appointmentID, user.ID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrNotUpdatable):
			h.logger.Warn("PUT /appointments/{appointmentId} - Not updatable: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotUpdatable)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{appointmentId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		default:
			h.logger.Error("PUT /appointments/{appointmentId} - Failed to update: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{appointmentId} - Updated: appointment_id=%d, user_id=%d", appt.ID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, AppointmentResponse{
		ID:        appt.ID,
		MasterID:  appt.MasterID,
		ServiceID: appt.ServiceID,
		Date:      appt.Date.Format(domain.DateFormat),
		Time:      appt.Time.String(),
		Status:    string(appt.Status),
		Comment:   appt.Comment,
		UpdatedAt: appt.UpdatedAt.Format(time.RFC3339),
	})
}

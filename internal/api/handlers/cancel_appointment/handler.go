package cancel_appointment

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
	msgNotCancellable       = "запись в текущем статусе нельзя отменить"
)

type Handler struct {
	service  AppointmentsService
	notifier Notifier
	logger   Logger
}

func NewHandler(service AppointmentsService, notifier Notifier, logger Logger) *Handler {
	return &Handler{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	MasterID  int64  `json:"master_id"`
	ServiceID int64  `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updated_at"`
}

// Handle PUT /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PUT /appointments/{appointmentId}/cancel - Invalid id: %s", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	appt, err := h.service.Cancel(r.Context(), user.ID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{appointmentId}/cancel - Not found: appointment_id=%d, user_id=%d",
				appointmentID, user.ID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrNotCancellable):
			h.logger.Warn("PUT /appointments/{appointmentId}/cancel - Not cancellable: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotCancellable)

		default:
			h.logger.Error("PUT /appointments/{appointmentId}/cancel - Failed to cancel: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.notifier.NotifyStatusChange(r.Context(), appt)

	h.logger.Info("PUT /appointments/{appointmentId}/cancel - Cancelled: appointment_id=%d, user_id=%d",
		appt.ID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, AppointmentResponse{
		ID:        appt.ID,
		MasterID:  appt.MasterID,
		ServiceID: appt.ServiceID,
		Date:      appt.Date.Format(domain.DateFormat),
		Time:      appt.Time.String(),
		Status:    string(appt.Status),
		UpdatedAt: appt.UpdatedAt.Format(time.RFC3339),
	})
}

package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	appointmentsService "github.com/beepkz/BEEP-BookingService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgAppointmentNotFound  = "запись не найдена"
	msgNotDeletable         = "удалить можно только отменённую запись"
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

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("DELETE /appointments/{appointmentId} - Invalid id: %s", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, appointmentID); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{appointmentId} - Not found: appointment_id=%d, user_id=%d",
				appointmentID, user.ID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrNotDeletable):
			h.logger.Warn("DELETE /appointments/{appointmentId} - Not deletable: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotDeletable)

		default:
			h.logger.Error("DELETE /appointments/{appointmentId} - Failed to delete: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{appointmentId} - Deleted: appointment_id=%d, user_id=%d",
		appointmentID, user.ID)
	handlers.RespondNoContent(w)
}

package create_appointment

import (
	"errors"
	"net/http"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	createAppointment "github.com/beepkz/BEEP-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgMasterNotFound     = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotTaken          = "выбранное время уже занято"
	msgPastDate           = "нельзя записаться на прошедшую дату"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user.ID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	appt, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrMasterNotFound):
			h.logger.Warn("POST /appointments - Master not found: master_id=%d", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: master_id=%d, date=%s, time=%s",
				req.MasterID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Past date: user_id=%d, date=%s", user.ID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, user_id=%d", appt.ID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(appt))
}

package get_user_appointments

import (
	"net/http"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	"github.com/beepkz/BEEP-BookingService/internal/domain"
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

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	appts, err := h.service.GetUserAppointments(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to load appointments: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		response = append(response, AppointmentResponse{
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
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

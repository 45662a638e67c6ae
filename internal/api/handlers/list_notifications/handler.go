package list_notifications

import (
	"net/http"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
)

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// NotificationResponse HTTP модель уведомления
type NotificationResponse struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	RelatedID int64  `json:"related_id,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	notifications, err := h.service.GetUserNotifications(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to load notifications: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			RelatedID: n.RelatedID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

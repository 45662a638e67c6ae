package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	notificationsService "github.com/beepkz/BEEP-BookingService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный идентификатор уведомления"
	msgNotificationNotFound  = "уведомление не найдено"
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

// Handle PUT /api/v1/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil || notificationID <= 0 {
		h.logger.Warn("PUT /notifications/{notificationId}/read - Invalid id: %s", mux.Vars(r)["notificationId"])
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.MarkRead(r.Context(), user.ID, notificationID); err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrNotificationNotFound):
			h.logger.Warn("PUT /notifications/{notificationId}/read - Not found: notification_id=%d, user_id=%d",
				notificationID, user.ID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		default:
			h.logger.Error("PUT /notifications/{notificationId}/read - Failed to mark read: notification_id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

package remove_favorite

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
)

const msgInvalidMasterID = "некорректный идентификатор мастера"

type Handler struct {
	service MastersService
	logger  Logger
}

func NewHandler(service MastersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/favorites/{masterId}
// Удаление отсутствующего избранного не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil || masterID <= 0 {
		h.logger.Warn("DELETE /favorites/{masterId} - Invalid master id: %s", mux.Vars(r)["masterId"])
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), user.ID, masterID); err != nil {
		h.logger.Error("DELETE /favorites/{masterId} - Failed to remove favorite: user_id=%d, master_id=%d, error=%v",
			user.ID, masterID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /favorites/{masterId} - Removed: user_id=%d, master_id=%d", user.ID, masterID)
	handlers.RespondNoContent(w)
}

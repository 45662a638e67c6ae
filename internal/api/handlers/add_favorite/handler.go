package add_favorite

import (
	"errors"
	"net/http"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	mastersService "github.com/beepkz/BEEP-BookingService/internal/service/masters"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMasterID    = "некорректный идентификатор мастера"
	msgMasterNotFound     = "мастер не найден"
)

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

// AddFavoriteRequest HTTP request model
type AddFavoriteRequest struct {
	MasterID int64 `json:"master_id"`
}

// Handle POST /api/v1/favorites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req AddFavoriteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /favorites - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.MasterID <= 0 {
		h.logger.Warn("POST /favorites - Invalid master id: %d", req.MasterID)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	if err := h.service.AddFavorite(r.Context(), user.ID, req.MasterID); err != nil {
		switch {
		case errors.Is(err, mastersService.ErrMasterNotFound):
			h.logger.Warn("POST /favorites - Master not found: master_id=%d", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		default:
			h.logger.Error("POST /favorites - Failed to add favorite: user_id=%d, master_id=%d, error=%v",
				user.ID, req.MasterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /favorites - Added: user_id=%d, master_id=%d", user.ID, req.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, map[string]int64{"master_id": req.MasterID})
}

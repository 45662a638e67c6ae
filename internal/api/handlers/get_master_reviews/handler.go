package get_master_reviews

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	mastersService "github.com/beepkz/BEEP-BookingService/internal/service/masters"
)

const (
	msgInvalidMasterID = "некорректный идентификатор мастера"
	msgMasterNotFound  = "мастер не найден"
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

// ReviewResponse HTTP модель отзыва
type ReviewResponse struct {
	ID        int64  `json:"id"`
	MasterID  int64  `json:"master_id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// Handle GET /api/v1/masters/{masterId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil || masterID <= 0 {
		h.logger.Warn("GET /masters/{masterId}/reviews - Invalid master id: %s", mux.Vars(r)["masterId"])
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	reviews, err := h.service.GetReviews(r.Context(), masterID)
	if err != nil {
		switch {
		case errors.Is(err, mastersService.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{masterId}/reviews - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		default:
			h.logger.Error("GET /masters/{masterId}/reviews - Failed to load reviews: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		response = append(response, ReviewResponse{
			ID:        rev.ID,
			MasterID:  rev.MasterID,
			UserName:  rev.UserName,
			Rating:    rev.Rating,
			Comment:   rev.Comment,
			CreatedAt: rev.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

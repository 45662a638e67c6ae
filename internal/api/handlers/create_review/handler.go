package create_review

import (
	"errors"
	"net/http"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	mastersService "github.com/beepkz/BEEP-BookingService/internal/service/masters"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReview      = "оценка должна быть от 1 до 5"
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

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	MasterID int64  `json:"master_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID        int64  `json:"id"`
	MasterID  int64  `json:"master_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.CreateReview(r.Context(), user.ID, req.MasterID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, mastersService.ErrInvalidReview):
			h.logger.Warn("POST /reviews - Invalid review: user_id=%d, master_id=%d: %v", user.ID, req.MasterID, err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		case errors.Is(err, mastersService.ErrMasterNotFound):
			h.logger.Warn("POST /reviews - Master not found: master_id=%d", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		default:
			h.logger.Error("POST /reviews - Failed to create review: user_id=%d, master_id=%d, error=%v",
				user.ID, req.MasterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%d, master_id=%d", review.ID, req.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, ReviewResponse{
		ID:        review.ID,
		MasterID:  review.MasterID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	})
}

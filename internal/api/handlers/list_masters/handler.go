package list_masters

import (
	"net/http"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	mastersService "github.com/beepkz/BEEP-BookingService/internal/service/masters"
	"github.com/beepkz/BEEP-BookingService/pkg/ptr"
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

// MasterResponse HTTP модель мастера со статистикой
type MasterResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Specialization string  `json:"specialization"`
	Rating         float64 `json:"rating"`
	Address        *string `json:"address,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
	ReviewCount    int     `json:"review_count"`
	IsVerified     bool    `json:"is_verified"`
	IsFavorite     bool    `json:"is_favorite"`
}

// Handle GET /api/v1/masters
// Авторизация опциональна: с токеном в ответе появляется персональный is_favorite
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var userID *int64
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		userID = ptr.Ptr(user.ID)
	}

	masters, err := h.service.GetMasters(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /masters - Failed to load masters: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]MasterResponse, 0, len(masters))
	for _, m := range masters {
		response = append(response, fromView(m))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

func fromView(m mastersService.MasterView) MasterResponse {
	return MasterResponse{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Specialization: m.Specialization,
		Rating:         m.Rating,
		Address:        m.Address,
		PhotoURL:       m.PhotoURL,
		ReviewCount:    m.ReviewCount,
		IsVerified:     m.IsVerified,
		IsFavorite:     m.IsFavorite,
	}
}

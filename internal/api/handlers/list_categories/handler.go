package list_categories

import (
	"net/http"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CategoryResponse HTTP модель категории услуг
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Handle GET /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /categories - Failed to load categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, fromDomain(c))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

func fromDomain(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

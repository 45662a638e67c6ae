package list_services

import (
	"net/http"
	"strconv"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/ptr"
)

const msgInvalidCategoryID = "некорректный category_id"

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

// ServiceResponse HTTP модель услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	CategoryID      int64   `json:"category_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	BasePrice       float64 `json:"base_price"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Handle GET /api/v1/services?category_id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /services - Invalid category_id: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryID = ptr.Ptr(id)
	}

	services, err := h.service.GetServices(r.Context(), categoryID)
	if err != nil {
		h.logger.Error("GET /services - Failed to load services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		response = append(response, fromDomain(s))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

func fromDomain(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		CategoryID:      s.CategoryID,
		Name:            s.Name,
		Description:     s.Description,
		BasePrice:       s.BasePrice,
		MinPrice:        s.MinPrice,
		MaxPrice:        s.MaxPrice,
		DurationMinutes: s.DurationMinutes,
	}
}

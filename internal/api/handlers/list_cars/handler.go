package list_cars

import (
	"net/http"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
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

// CarResponse HTTP модель автомобиля справочника
type CarResponse struct {
	ID    int64  `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Type  string `json:"type"`
}

// Handle GET /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cars, err := h.service.GetCars(r.Context())
	if err != nil {
		h.logger.Error("GET /cars - Failed to load cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		response = append(response, CarResponse{
			ID:    c.ID,
			Brand: c.Brand,
			Model: c.Model,
			Year:  c.Year,
			Type:  c.Type,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

package calculate_price

import (
	"errors"
	"net/http"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	calculatePrice "github.com/beepkz/BEEP-BookingService/internal/usecase/calculate_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "service_id и car_id обязательны"
	msgServiceNotFound    = "услуга не найдена"
	msgCarNotFound        = "автомобиль не найден"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing/calculate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/calculate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	breakdown, err := h.useCase.Execute(r.Context(), &calculatePrice.Request{
		ServiceID: req.ServiceID,
		CarID:     req.CarID,
	})
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /pricing/calculate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, calculatePrice.ErrServiceNotFound):
			h.logger.Warn("POST /pricing/calculate - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, calculatePrice.ErrCarNotFound):
			h.logger.Warn("POST /pricing/calculate - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("POST /pricing/calculate - Failed to calculate price: service_id=%d, car_id=%d, error=%v",
				req.ServiceID, req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromBreakdown(breakdown))
}

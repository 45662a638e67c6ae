package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	"github.com/beepkz/BEEP-BookingService/internal/domain"
	getAvailableSlots "github.com/beepkz/BEEP-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidMasterID = "некорректный идентификатор мастера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMasterNotFound  = "мастер не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Handle GET /api/v1/masters/{masterId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil || masterID <= 0 {
		h.logger.Warn("GET /masters/{masterId}/available-slots - Invalid master id: %s", mux.Vars(r)["masterId"])
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /masters/{masterId}/available-slots - Invalid date: %s", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		MasterID: masterID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{masterId}/available-slots - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /masters/{masterId}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /masters/{masterId}/available-slots - Failed to get slots: master_id=%d, error=%v",
				masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]string, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, s.String())
	}

	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: slots,
	})
}

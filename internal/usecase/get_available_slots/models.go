package get_available_slots

import (
	"time"

	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	MasterID int64     // ID мастера
	Date     time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     time.Time          // Дата, на которую запрашивались слоты
	MasterID int64              // ID мастера
	Slots    []types.TimeString // Свободные времена начала, по возрастанию
}

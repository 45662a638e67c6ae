package create_appointment

import (
	"time"

	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID пользователя из контекста авторизации
	MasterID  int64            // ID мастера
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	Time      types.TimeString // Время начала
	Comment   string           // Комментарий клиента, опционально
}

package calculate_price

// Request модель запроса на расчёт стоимости
type Request struct {
	ServiceID int64 // ID услуги
	CarID     int64 // ID автомобиля из справочника
}

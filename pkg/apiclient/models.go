package apiclient

// User модель пользователя в ответах API
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Session ответ регистрации и логина
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Category категория услуг
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Service услуга
type Service struct {
	ID              int64   `json:"id"`
	CategoryID      int64   `json:"category_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	BasePrice       float64 `json:"base_price"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Car автомобиль справочника
type Car struct {
	ID    int64  `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Type  string `json:"type"`
}

// Master мастер со статистикой
type Master struct {
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

// Review отзыв о мастере
type Review struct {
	ID        int64  `json:"id"`
	MasterID  int64  `json:"master_id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// Slots свободные времена мастера на дату
type Slots struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// PriceDetail строка детализации расчёта стоимости
type PriceDetail struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Multiplier  float64 `json:"multiplier,omitempty"`
	IsAddition  bool    `json:"is_addition"`
}

// Price расчёт стоимости услуги для автомобиля
type Price struct {
	ServiceID    int64         `json:"service_id"`
	ServiceName  string        `json:"service_name"`
	CarBrand     string        `json:"car_brand"`
	CarModel     string        `json:"car_model"`
	CarYear      int           `json:"car_year"`
	CarType      string        `json:"car_type"`
	CarAge       int           `json:"car_age"`
	BasePrice    float64       `json:"base_price"`
	FinalPrice   float64       `json:"final_price"`
	MinPrice     float64       `json:"min_price"`
	MaxPrice     float64       `json:"max_price"`
	PriceDetails []PriceDetail `json:"price_details"`
}

// Appointment запись к мастеру
type Appointment struct {
	ID          int64   `json:"id"`
	MasterID    int64   `json:"master_id"`
	ServiceID   int64   `json:"service_id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	Comment     string  `json:"comment,omitempty"`
	ServiceName *string `json:"service_name,omitempty"`
	MasterName  *string `json:"master_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// Notification уведомление пользователя
type Notification struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	RelatedID int64  `json:"related_id,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// Статусы записи
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// RegisterRequest тело запроса регистрации
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// CreateAppointmentRequest тело запроса создания записи.
// Пустой комментарий уходит на сервер явным полем, а не пропуском ключа
type CreateAppointmentRequest struct {
	MasterID  int64  `json:"master_id"`
	ServiceID int64  `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Comment   string `json:"comment"`
}

// UpdateAppointmentRequest тело запроса изменения записи
type UpdateAppointmentRequest struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Comment string `json:"comment"`
}

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Register регистрирует пользователя и возвращает сессию
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Login аутентифицирует пользователя и возвращает сессию
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Categories возвращает категории услуг
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Services возвращает услуги, categoryID == 0 означает все категории
func (c *Client) Services(ctx context.Context, categoryID int64) ([]Service, error) {
	path := "/api/v1/services"
	if categoryID > 0 {
		path += fmt.Sprintf("?category_id=%d", categoryID)
	}

	var services []Service
	if err := c.do(ctx, http.MethodGet, path, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Cars возвращает автомобили справочника
func (c *Client) Cars(ctx context.Context) ([]Car, error) {
	var cars []Car
	if err := c.do(ctx, http.MethodGet, "/api/v1/cars", nil, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// Masters возвращает мастеров со статистикой
func (c *Client) Masters(ctx context.Context) ([]Master, error) {
	var masters []Master
	if err := c.do(ctx, http.MethodGet, "/api/v1/masters", nil, &masters); err != nil {
		return nil, err
	}
	return masters, nil
}

// MasterReviews возвращает отзывы мастера
func (c *Client) MasterReviews(ctx context.Context, masterID int64) ([]Review, error) {
	var reviews []Review
	path := fmt.Sprintf("/api/v1/masters/%d/reviews", masterID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AvailableSlots возвращает свободные времена мастера на дату (YYYY-MM-DD)
func (c *Client) AvailableSlots(ctx context.Context, masterID int64, date string) (*Slots, error) {
	var slots Slots
	path := fmt.Sprintf("/api/v1/masters/%d/available-slots?date=%s", masterID, url.QueryEscape(date))
	if err := c.do(ctx, http.MethodGet, path, nil, &slots); err != nil {
		return nil, err
	}
	return &slots, nil
}

// CalculatePrice возвращает расчёт стоимости услуги для автомобиля
func (c *Client) CalculatePrice(ctx context.Context, serviceID, carID int64) (*Price, error) {
	body := map[string]int64{"service_id": serviceID, "car_id": carID}

	var price Price
	if err := c.do(ctx, http.MethodPost, "/api/v1/pricing/calculate", body, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

// CreateAppointment создает запись к мастеру
func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	var appt Appointment
	if err := c.do(ctx, http.MethodPost, "/api/v1/appointments", req, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// Appointments возвращает записи текущего пользователя
func (c *Client) Appointments(ctx context.Context) ([]Appointment, error) {
	var appts []Appointment
	if err := c.do(ctx, http.MethodGet, "/api/v1/appointments", nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// Appointment возвращает одну запись пользователя
func (c *Client) Appointment(ctx context.Context, id int64) (*Appointment, error) {
	var appt Appointment
	path := fmt.Sprintf("/api/v1/appointments/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateAppointment меняет дату, время и комментарий записи
func (c *Client) UpdateAppointment(ctx context.Context, id int64, req UpdateAppointmentRequest) (*Appointment, error) {
	var appt Appointment
	path := fmt.Sprintf("/api/v1/appointments/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// CancelAppointment отменяет запись
func (c *Client) CancelAppointment(ctx context.Context, id int64) (*Appointment, error) {
	var appt Appointment
	path := fmt.Sprintf("/api/v1/appointments/%d/cancel", id)
	if err := c.do(ctx, http.MethodPut, path, nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// DeleteAppointment удаляет отменённую запись насовсем
func (c *Client) DeleteAppointment(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/v1/appointments/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// AddFavorite добавляет мастера в избранное
func (c *Client) AddFavorite(ctx context.Context, masterID int64) error {
	body := map[string]int64{"master_id": masterID}
	return c.do(ctx, http.MethodPost, "/api/v1/favorites", body, nil)
}

// RemoveFavorite убирает мастера из избранного
func (c *Client) RemoveFavorite(ctx context.Context, masterID int64) error {
	path := fmt.Sprintf("/api/v1/favorites/%d", masterID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Notifications возвращает уведомления текущего пользователя
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.do(ctx, http.MethodGet, "/api/v1/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

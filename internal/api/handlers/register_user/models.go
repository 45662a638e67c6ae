package register_user

import (
	authService "github.com/beepkz/BEEP-BookingService/internal/service/auth"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UserResponse HTTP модель пользователя без чувствительных полей
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromSession конвертирует сессию сервиса в HTTP response
func FromSession(s *authService.Session) *SessionResponse {
	return &SessionResponse{
		Token: s.Token,
		User: UserResponse{
			ID:    s.User.ID,
			Name:  s.User.Name,
			Email: s.User.Email,
			Phone: s.User.Phone,
		},
	}
}

package login_user

import (
	"errors"
	"net/http"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	authService "github.com/beepkz/BEEP-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: %s", req.Email)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Session issued: user_id=%d", session.User.ID)
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

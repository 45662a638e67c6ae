package register_user

import (
	"errors"
	"net/http"

	"github.com/beepkz/BEEP-BookingService/internal/api/handlers"
	authService "github.com/beepkz/BEEP-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "пользователь с таким email уже существует"
	msgInvalidInput       = "имя, email и пароль обязательны"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: %s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/register - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", session.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromSession(session))
}

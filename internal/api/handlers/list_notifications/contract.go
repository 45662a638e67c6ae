package list_notifications

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type NotificationsService interface {
	GetUserNotifications(ctx context.Context, userID int64) ([]domain.Notification, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package mark_notification_read

import "context"

type NotificationsService interface {
	MarkRead(ctx context.Context, userID, notificationID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	// или принадлежит другому пользователю
	ErrNotificationNotFound = errors.New("notifications.service: notification not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications.service: internal error")
)

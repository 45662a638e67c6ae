package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	// или принадлежит другому пользователю
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrNotCancellable возвращается при попытке отменить завершённую
	// или уже отменённую запись
	ErrNotCancellable = errors.New("appointments.service: appointment cannot be cancelled")

	// ErrNotUpdatable возвращается при попытке изменить запись в терминальном статусе
	ErrNotUpdatable = errors.New("appointments.service: appointment cannot be updated")

	// ErrNotDeletable возвращается при попытке удалить неотменённую запись
	ErrNotDeletable = errors.New("appointments.service: only cancelled appointments can be deleted")

	// ErrInvalidInput возвращается при некорректных данных записи
	ErrInvalidInput = errors.New("appointments.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)

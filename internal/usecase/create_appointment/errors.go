package create_appointment

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("master not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotTaken возвращается, когда время у мастера уже занято
	ErrSlotTaken = errors.New("time slot is already taken")

	// ErrInvalidDate возвращается при попытке записи на прошедшую дату
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

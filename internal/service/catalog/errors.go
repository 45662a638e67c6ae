package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.service: service not found")

	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("catalog.service: car not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)

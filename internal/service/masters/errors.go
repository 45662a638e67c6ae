package masters

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("masters.service: master not found")

	// ErrInvalidReview возвращается при некорректных данных отзыва
	ErrInvalidReview = errors.New("masters.service: invalid review")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("masters.service: internal error")
)

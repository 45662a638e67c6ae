package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("auth.service: invalid credentials")

	// ErrEmailTaken возвращается при регистрации на занятый email
	ErrEmailTaken = errors.New("auth.service: email already taken")

	// ErrInvalidToken возвращается для неизвестного или протухшего токена
	ErrInvalidToken = errors.New("auth.service: invalid or expired token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth.service: internal error")
)

package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork возвращается при транспортных ошибках: таймаут, обрыв соединения
var ErrNetwork = errors.New("apiclient: network error")

// APIError ошибка уровня API: сервер ответил, но неуспешно
// Message берётся из поля error тела ответа, если оно есть
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("apiclient: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("apiclient: status %d", e.StatusCode)
}

// IsUnauthorized проверяет, что ошибка - это 401 ответ API
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound проверяет, что ошибка - это 404 ответ API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

package flow

import "errors"

// ValidationError ошибка предварительной проверки: запрос в сеть не уходил
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "flow: validation: " + e.Message
}

// IsValidation проверяет, что ошибка является ошибкой валидации
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ErrAuthRequired возвращается для действий, требующих авторизации
var ErrAuthRequired = errors.New("flow: authentication required")

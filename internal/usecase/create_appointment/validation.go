package create_appointment

import (
	"fmt"
	"time"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	"github.com/beepkz/BEEP-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := types.NewTimeStringFromString(string(req.Time)); err != nil {
		return fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	if len(req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(requestDate, now time.Time) error {
	dateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

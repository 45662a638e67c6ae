package calculate_price

import (
	"context"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	calculatePrice "github.com/beepkz/BEEP-BookingService/internal/usecase/calculate_price"
)

type CalculatePriceUseCase interface {
	Execute(ctx context.Context, req *calculatePrice.Request) (*domain.PriceBreakdown, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package remove_favorite

import "context"

type MastersService interface {
	RemoveFavorite(ctx context.Context, userID, masterID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

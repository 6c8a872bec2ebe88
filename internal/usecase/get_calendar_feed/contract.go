package get_calendar_feed

import (
	"context"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
)

// SlotServiceClient интерфейс клиента для бэкенда слотов
type SlotServiceClient interface {
	GetSlots(ctx context.Context, token string) ([]domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package select_date

import (
	"context"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
)

// SlotServiceClient интерфейс клиента для бэкенда слотов
type SlotServiceClient interface {
	GetSlots(ctx context.Context, token string) ([]domain.Slot, error)
	OpenCreateSlotModal(ctx context.Context, token, date string) error
	OpenCreateMeetingModal(ctx context.Context, token string, slots []domain.Slot) error
}

// OutcomeRecorder фиксирует исходы кликов по дате, может быть nil
type OutcomeRecorder interface {
	ObserveDateClick(role string, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

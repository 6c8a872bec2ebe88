package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	slotClient "github.com/m04kA/SMC-CalendarGateway/internal/integrations/slotservice"
)

// UseCase use case для получения слотов за конкретную дату
type UseCase struct {
	slotClient SlotServiceClient
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotClient SlotServiceClient, logger Logger) *UseCase {
	return &UseCase{
		slotClient: slotClient,
		logger:     logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слоты
	slots, err := uc.slotClient.GetSlots(ctx, req.Session.Token)
	if err != nil {
		if errors.Is(err, slotClient.ErrUnauthorized) {
			uc.logger.Warn("GetAvailableSlots: backend rejected session token: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to fetch slots: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch slots: %v", ErrBackendUnavailable, err)
	}

	// 3. Оставляем слоты выбранной даты
	onDate := domain.FilterByDate(slots, req.Date)
	available, booked := countByState(onDate)

	result := onDate
	if req.OnlyAvailable {
		result = availableOnly(onDate)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, available=%d, booked=%d, returned=%d",
		req.Date, available, booked, len(result))

	return &Response{
		Date:           req.Date,
		Slots:          result,
		AvailableCount: available,
		BookedCount:    booked,
	}, nil
}

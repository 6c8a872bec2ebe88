package get_calendar_feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	slotClient "github.com/m04kA/SMC-CalendarGateway/internal/integrations/slotservice"
)

// UseCase use case для построения ленты календаря по слотам
type UseCase struct {
	slotClient SlotServiceClient
	palette    Palette
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotClient SlotServiceClient,
	palette Palette,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotClient: slotClient,
		palette:    palette,
		logger:     logger,
	}
}

// Execute выполняет use case: слоты берутся у бэкенда заново при каждом вызове, кэша нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarFeed: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetCalendarFeed: role=%q, range=%s..%s", req.Session.RawRole, req.RangeStart, req.RangeEnd)

	// 2. Получаем слоты
	slots, err := uc.slotClient.GetSlots(ctx, req.Session.Token)
	if err != nil {
		if errors.Is(err, slotClient.ErrUnauthorized) {
			uc.logger.Warn("GetCalendarFeed: backend rejected session token: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		uc.logger.Error("GetCalendarFeed: failed to fetch slots: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch slots: %v", ErrBackendUnavailable, err)
	}

	// 3. Группируем по датам и строим события
	aggregates := domain.AggregateByDate(slots)
	entries := buildEntries(aggregates, uc.palette)

	uc.logger.Info("GetCalendarFeed: built %d entries from %d slots", len(entries), len(slots))

	return &Response{
		Entries:    entries,
		SlotsCount: len(slots),
	}, nil
}

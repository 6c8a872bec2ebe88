package select_date

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
)

// UseCase use case обработки клика по дате календаря
type UseCase struct {
	slotClient SlotServiceClient
	recorder   OutcomeRecorder
	logger     Logger

	// group не nil, если включено подавление параллельных кликов
	group *singleflight.Group
}

// NewUseCase создает новый экземпляр use case
// singleFlight: параллельные клики одной сессии по одной дате делят один запрос к бэкенду
func NewUseCase(
	slotClient SlotServiceClient,
	singleFlight bool,
	logger Logger,
) *UseCase {
	uc := &UseCase{
		slotClient: slotClient,
		logger:     logger,
	}
	if singleFlight {
		uc.group = &singleflight.Group{}
	}
	return uc
}

// WithRecorder включает запись исходов кликов
func (uc *UseCase) WithRecorder(r OutcomeRecorder) *UseCase {
	uc.recorder = r
	return uc
}

// Execute выполняет use case. На один клик уходит не больше одного begin-flow запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectDate: validation failed: %v", err)
		return nil, err
	}

	// 2. Без single-flight каждый клик обрабатывается независимо
	if uc.group == nil {
		resp, err := uc.dispatch(ctx, req)
		uc.record(req, resp, err)
		return resp, err
	}

	key := fmt.Sprintf("%s|%s|%s", req.Session.Token, req.Session.Role, req.Date)
	// Общий dispatch не отменяется вместе с запросом, который его начал.
	// Значения контекста (request id) сохраняются, время ограничено таймаутом клиента
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := uc.group.Do(key, func() (interface{}, error) {
		return uc.dispatch(flightCtx, req)
	})
	if shared {
		uc.logger.Info("SelectDate: click on %s joined an in-flight dispatch", req.Date)
	}

	resp, _ := v.(*Response)
	if resp != nil && shared {
		copied := *resp
		copied.Shared = true
		resp = &copied
	}
	uc.record(req, resp, err)

	return resp, err
}

// dispatch выбирает ветку по роли
func (uc *UseCase) dispatch(ctx context.Context, req *Request) (*Response, error) {
	switch req.Session.Role {
	case domain.RoleProfessor:
		return uc.requestSlotCreation(ctx, req)
	case domain.RoleStudent:
		return uc.requestBooking(ctx, req)
	default:
		uc.logger.Warn("SelectDate: unhandled user role %q, date=%s", req.Session.RawRole, req.Date)
		return &Response{Outcome: OutcomeNone}, nil
	}
}

// requestSlotCreation профессор: просим бэкенд открыть создание слота, слоты не запрашиваются
func (uc *UseCase) requestSlotCreation(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectDate: professor clicked date %s", req.Date)

	if err := uc.slotClient.OpenCreateSlotModal(ctx, req.Session.Token, req.Date); err != nil {
		uc.logger.Error("SelectDate: failed to open create slot modal for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: open create slot modal: %v", ErrBackendUnavailable, err)
	}

	return &Response{Outcome: OutcomeSlotCreationRequested}, nil
}

// requestBooking студент: берём слоты на дату и, если они есть, просим бэкенд открыть бронирование
func (uc *UseCase) requestBooking(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectDate: student clicked date %s", req.Date)

	slots, err := uc.slotClient.GetSlots(ctx, req.Session.Token)
	if err != nil {
		uc.logger.Error("SelectDate: failed to fetch slots for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: fetch slots: %v", ErrBackendUnavailable, err)
	}

	daySlots := domain.FilterByDate(slots, req.Date)
	if len(daySlots) == 0 {
		uc.logger.Info("SelectDate: no slots on date %s", req.Date)
		return &Response{
			Outcome: OutcomeNoAvailableSlots,
			Message: domain.NoAvailableSlotsMessage,
		}, nil
	}

	if err := uc.slotClient.OpenCreateMeetingModal(ctx, req.Session.Token, daySlots); err != nil {
		uc.logger.Error("SelectDate: failed to open create meeting modal for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: open create meeting modal: %v", ErrBackendUnavailable, err)
	}

	uc.logger.Info("SelectDate: booking requested for date %s with %d slots", req.Date, len(daySlots))
	return &Response{
		Outcome:    OutcomeBookingRequested,
		SlotsCount: len(daySlots),
	}, nil
}

func (uc *UseCase) record(req *Request, resp *Response, err error) {
	if uc.recorder == nil {
		return
	}

	outcome := OutcomeNone
	if err == nil && resp != nil {
		outcome = resp.Outcome
	}

	role := string(req.Session.Role)
	if role == "" {
		role = "unknown"
	}
	uc.recorder.ObserveDateClick(role, string(outcome))
}

package get_calendar_feed

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarGateway/internal/session"
	getCalendarFeed "github.com/m04kA/SMC-CalendarGateway/internal/usecase/get_calendar_feed"
)

const (
	msgUnauthorized       = "authorization token missing"
	msgTokenRejected      = "session token rejected by slot service"
	msgBackendUnavailable = "failed to load slots"
)

type Handler struct {
	useCase GetCalendarFeedUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarFeedUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/events
// Query params: start, end (видимый диапазон календаря, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /calendar/events - No session in request context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()
	useCaseReq := &getCalendarFeed.Request{
		Session:    sess,
		RangeStart: query.Get("start"),
		RangeEnd:   query.Get("end"),
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarFeed.ErrInvalidInput):
			h.logger.Warn("GET /calendar/events - Invalid input: %v", err)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, getCalendarFeed.ErrUnauthorized):
			h.logger.Warn("GET /calendar/events - Token rejected by backend: %v", err)
			handlers.RespondUnauthorized(w, msgTokenRejected)

		default:
			// Ветка отказа виджета: событий за этот цикл обновления не будет
			h.logger.Error("GET /calendar/events - Failed to build feed: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendar/events - Feed built successfully: entries=%d, slots=%d",
		len(response), result.SlotsCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}

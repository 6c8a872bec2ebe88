package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarGateway/internal/session"
	getAvailableSlots "github.com/m04kA/SMC-CalendarGateway/internal/usecase/get_available_slots"
)

const (
	msgUnauthorized       = "authorization token missing"
	msgTokenRejected      = "session token rejected by slot service"
	msgMissingDate        = "date is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidAvailable   = "available must be a boolean"
	msgBackendUnavailable = "failed to load slots"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/slots
// Query params: date (required, YYYY-MM-DD), available (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /calendar/slots - No session in request context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем date из query параметров
	query := r.URL.Query()
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /calendar/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(sess, dateStr, query.Get("available"))
	if err != nil {
		h.logger.Warn("GET /calendar/slots - Invalid available flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAvailable)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /calendar/slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /calendar/slots - Invalid input: %v", err)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, getAvailableSlots.ErrUnauthorized):
			h.logger.Warn("GET /calendar/slots - Token rejected by backend: %v", err)
			handlers.RespondUnauthorized(w, msgTokenRejected)

		default:
			h.logger.Error("GET /calendar/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendar/slots - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

package select_date

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CalendarGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarGateway/internal/session"
	selectDate "github.com/m04kA/SMC-CalendarGateway/internal/usecase/select_date"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingDate        = "date is required"
	msgUnauthorized       = "authorization token missing"
)

type Handler struct {
	useCase  SelectDateUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase SelectDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/calendar/date-click
// Ошибки бэкенда пользователю не показываются: они пишутся в лог, ответ - outcome "none"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /calendar/date-click - No session in request context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req DateClickRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/date-click - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /calendar/date-click - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sess))
	if err != nil {
		switch {
		case errors.Is(err, selectDate.ErrInvalidInput):
			h.logger.Warn("POST /calendar/date-click - Invalid input: date=%q, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgMissingDate)

		default:
			h.logger.Error("POST /calendar/date-click - Dispatch failed: date=%s, role=%q, error=%v",
				req.Date, sess.RawRole, err)
			handlers.RespondJSON(w, http.StatusOK, noneResponse())
		}
		return
	}

	h.logger.Info("POST /calendar/date-click - Dispatched: date=%s, role=%q, outcome=%s, shared=%t",
		req.Date, sess.RawRole, result.Outcome, result.Shared)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

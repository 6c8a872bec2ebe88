package get_calendar_config

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarGateway/internal/api/handlers"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	response *CalendarConfigResponse
	logger   Logger
}

func NewHandler(settings Settings, logger Logger) *Handler {
	return &Handler{
		response: fromSettings(settings),
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /calendar/config - Served widget config: initial_view=%s", h.response.InitialView)
	handlers.RespondJSON(w, http.StatusOK, h.response)
}

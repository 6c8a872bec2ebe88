package get_calendar_config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	h := NewHandler(Settings{
		InitialView:   "dayGridMonth",
		Height:        "100%",
		ToolbarLeft:   "prev,next today",
		ToolbarCenter: "title",
		ToolbarRight:  "dayGridMonth,timeGridWeek,timeGridDay",
		EventsURL:     "/api/v1/calendar/events",
		DateClickURL:  "/api/v1/calendar/date-click",
	}, nopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/config", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"initialView": "dayGridMonth",
		"height": "100%",
		"headerToolbar": {"left": "prev,next today", "center": "title", "right": "dayGridMonth,timeGridWeek,timeGridDay"},
		"eventsUrl": "/api/v1/calendar/events",
		"dateClickUrl": "/api/v1/calendar/date-click"
	}`, w.Body.String())
}

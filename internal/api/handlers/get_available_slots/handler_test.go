package get_available_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	"github.com/m04kA/SMC-CalendarGateway/internal/session"
	getAvailableSlots "github.com/m04kA/SMC-CalendarGateway/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type useCaseStub struct {
	resp     *getAvailableSlots.Response
	err      error
	captured *getAvailableSlots.Request
}

func (s *useCaseStub) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.captured = req
	return s.resp, s.err
}

func newRequest(query string, withSession bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/slots"+query, nil)
	if withSession {
		ctx := session.WithSession(req.Context(), domain.Session{Token: "tok", Role: domain.RoleStudent})
		req = req.WithContext(ctx)
	}
	return req
}

func TestHandleReturnsSlots(t *testing.T) {
	stub := &useCaseStub{resp: &getAvailableSlots.Response{
		Date: "2025-02-25",
		Slots: []domain.Slot{
			{StartTime: "2025-02-25T10:00:00", Raw: []byte(`{"id":1,"start_time":"2025-02-25T10:00:00","is_booked":false,"room":"A"}`)},
		},
		AvailableCount: 1,
		BookedCount:    2,
	}}
	w := httptest.NewRecorder()

	NewHandler(stub, nopLogger{}).Handle(w, newRequest("?date=2025-02-25&available=true", true))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"date":"2025-02-25",
		"available":1,
		"booked":2,
		"slots":[{"id":1,"start_time":"2025-02-25T10:00:00","is_booked":false,"room":"A"}]
	}`, w.Body.String())

	require.NotNil(t, stub.captured)
	assert.Equal(t, "2025-02-25", stub.captured.Date)
	assert.True(t, stub.captured.OnlyAvailable)
	assert.Equal(t, "tok", stub.captured.Session.Token)
}

func TestHandleEmptySlotsIsArray(t *testing.T) {
	stub := &useCaseStub{resp: &getAvailableSlots.Response{Date: "2025-03-01"}}
	w := httptest.NewRecorder()

	NewHandler(stub, nopLogger{}).Handle(w, newRequest("?date=2025-03-01", true))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"2025-03-01","available":0,"booked":0,"slots":[]}`, w.Body.String())
	assert.False(t, stub.captured.OnlyAvailable)
}

func TestHandleBadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing date", query: ""},
		{name: "bad available flag", query: "?date=2025-02-25&available=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &useCaseStub{}
			w := httptest.NewRecorder()

			NewHandler(stub, nopLogger{}).Handle(w, newRequest(tt.query, true))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, stub.captured)
		})
	}
}

func TestHandleNoSession(t *testing.T) {
	stub := &useCaseStub{}
	w := httptest.NewRecorder()

	NewHandler(stub, nopLogger{}).Handle(w, newRequest("?date=2025-02-25", false))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, stub.captured)
}

func TestHandleUseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "invalid date", err: fmt.Errorf("%w: bad", getAvailableSlots.ErrInvalidDate), wantCode: http.StatusBadRequest},
		{name: "invalid input", err: fmt.Errorf("%w: no token", getAvailableSlots.ErrInvalidInput), wantCode: http.StatusUnauthorized},
		{name: "token rejected", err: fmt.Errorf("%w: 401", getAvailableSlots.ErrUnauthorized), wantCode: http.StatusUnauthorized},
		{name: "backend down", err: fmt.Errorf("%w: refused", getAvailableSlots.ErrBackendUnavailable), wantCode: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			NewHandler(&useCaseStub{err: tt.err}, nopLogger{}).Handle(w, newRequest("?date=2025-02-25", true))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	"github.com/m04kA/SMC-CalendarGateway/internal/session"
	"github.com/m04kA/SMC-CalendarGateway/pkg/requestid"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type observed struct {
	method string
	route  string
	status int
}

type metricsSpy struct {
	calls []observed
}

func (m *metricsSpy) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.calls = append(m.calls, observed{method: method, route: route, status: status})
}

func TestAuthStoresSession(t *testing.T) {
	var got domain.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = session.FromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	})

	h := Auth(session.NewResolver("", "role"), nopLogger{})(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/events", nil)
	req.Header.Set("Authorization", "Bearer opaque")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "opaque", got.Token)
	assert.Equal(t, domain.RoleUnknown, got.Role)
}

func TestAuthRejectsMissingToken(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	h := Auth(session.NewResolver("", "role"), nopLogger{})(next)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/events", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, called)
}

func TestAuthRejectsInvalidTokenWhenVerifying(t *testing.T) {
	h := Auth(session.NewResolver("secret", "role"), nopLogger{})(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer opaque")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), msgTokenInvalid)
}

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	var inCtx string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inCtx = requestid.FromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, inCtx)
	assert.Equal(t, inCtx, w.Header().Get(requestid.Header))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.Header, "given-id")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "given-id", inCtx)
	assert.Equal(t, "given-id", w.Header().Get(requestid.Header))
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	spy := &metricsSpy{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(spy))
	r.HandleFunc("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	require.Equal(t, []observed{{method: http.MethodGet, route: "/items/{id}", status: http.StatusAccepted}}, spy.calls)
}

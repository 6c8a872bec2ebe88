package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarGateway/internal/api/middleware"
)

// Маршруты gateway
const (
	Prefix        = "/api/v1"
	EventsPath    = "/calendar/events"
	DateClickPath = "/calendar/date-click"
	SlotsPath     = "/calendar/slots"
	ConfigPath    = "/calendar/config"
	HealthPath    = "/healthz"

	EventsURL    = Prefix + EventsPath
	DateClickURL = Prefix + DateClickPath
	SlotsURL     = Prefix + SlotsPath
)

// RouteHandler обработчик одного маршрута
type RouteHandler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// RouterDeps зависимости роутера. Metrics и MetricsHandler опциональны
type RouterDeps struct {
	FeedHandler      RouteHandler
	DateClickHandler RouteHandler
	SlotsHandler     RouteHandler
	ConfigHandler    RouteHandler

	Resolver middleware.SessionResolver
	Logger   middleware.Logger

	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter собирает маршруты gateway
func NewRouter(d RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if d.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.Metrics))
	}

	// Metrics endpoint (публичный, без аутентификации)
	if d.MetricsHandler != nil && d.MetricsPath != "" {
		r.Handle(d.MetricsPath, d.MetricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc(HealthPath, handlers.Health).Methods(http.MethodGet)

	api := r.PathPrefix(Prefix).Subrouter()
	api.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Настройки виджета календаря
	api.HandleFunc(ConfigPath, d.ConfigHandler.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer)
	// ============================================================

	// Auth оборачивает каждый маршрут отдельно, без вложенного subrouter,
	// чтобы чужой метод получал 405, а не 404
	auth := middleware.Auth(d.Resolver, d.Logger)
	protect := func(h RouteHandler) http.Handler {
		return auth(http.HandlerFunc(h.Handle))
	}

	// Лента событий календаря (источник событий виджета)
	api.Handle(EventsPath, protect(d.FeedHandler)).Methods(http.MethodGet)

	// Клик по дате
	api.Handle(DateClickPath, protect(d.DateClickHandler)).Methods(http.MethodPost)

	// Слоты выбранной даты
	api.Handle(SlotsPath, protect(d.SlotsHandler)).Methods(http.MethodGet)

	return r
}

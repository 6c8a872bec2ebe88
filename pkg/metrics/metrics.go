package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	dateClicks      *prometheus.CounterVec
}

// New регистрирует метрики в реестре по умолчанию (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served by the gateway",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		backendRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_backend_requests_total",
			Help:        "Total number of requests sent to the slot backend",
			ConstLabels: constLabels,
		}, []string{"endpoint", "status"}),

		backendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "slot_backend_request_duration_seconds",
			Help:        "Slot backend request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"endpoint"}),

		dateClicks: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_date_clicks_total",
			Help:        "Calendar date clicks by role and outcome",
			ConstLabels: constLabels,
		}, []string{"role", "outcome"}),
	}
}

// ObserveHTTPRequest фиксирует входящий HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBackendRequest фиксирует запрос к бэкенду слотов
func (m *Metrics) ObserveBackendRequest(endpoint, status string, duration time.Duration) {
	m.backendRequests.WithLabelValues(endpoint, status).Inc()
	m.backendDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// ObserveDateClick фиксирует исход клика по дате
func (m *Metrics) ObserveDateClick(role, outcome string) {
	m.dateClicks.WithLabelValues(role, outcome).Inc()
}

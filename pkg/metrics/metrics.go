package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики базы данных
	DBQueryDuration *prometheus.HistogramVec
	DBErrorsTotal   *prometheus.CounterVec

	// Метрики connection pool
	DBConnectionsOpen  *prometheus.GaugeVec
	DBConnectionsInUse *prometheus.GaugeVec
	DBConnectionsIdle  *prometheus.GaugeVec
}

// New создает и регистрирует метрики сервиса в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		DBErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total number of database errors",
		}, []string{"service", "operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}, []string{"service"}),

		DBConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}, []string{"service"}),
	}
}

// RecordHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) RecordHTTPRequest(method, path, status string, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(durationSeconds)
}

// RecordDBQuery записывает метрики запроса к базе данных
func (m *Metrics) RecordDBQuery(operation string, durationSeconds float64, err error) {
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(durationSeconds)
	if err != nil {
		m.DBErrorsTotal.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// RecordDBPoolStats записывает текущее состояние connection pool
func (m *Metrics) RecordDBPoolStats(open, inUse, idle int) {
	m.DBConnectionsOpen.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBConnectionsInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.DBConnectionsIdle.WithLabelValues(m.serviceName).Set(float64(idle))
}

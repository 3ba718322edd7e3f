package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics основной набор метрик сервиса
// Регистрируется в дефолтном prometheus registry при создании
type Metrics struct {
	service string

	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики connection pool БД
	DBConnectionsOpen  *prometheus.GaugeVec
	DBConnectionsInUse *prometheus.GaugeVec
	DBConnectionsIdle  *prometheus.GaugeVec

	// Метрики запросов к БД
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Доменные метрики: состояние бронирований по последнему снимку
	BookingsActive        *prometheus.GaugeVec
	BookingsArchived      *prometheus.GaugeVec
	BookingsExpired       *prometheus.GaugeVec
	BookingsNearingExpiry *prometheus.GaugeVec

	// Метрики фоновой архивации
	SweepArchivedTotal *prometheus.CounterVec
	SweepFailuresTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	return &Metrics{
		service: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Open database connections",
		}, []string{"service"}),

		DBConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Database connections currently in use",
		}, []string{"service"}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Idle database connections",
		}, []string{"service"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		BookingsActive: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bookings_active",
			Help: "Active bookings in the last snapshot",
		}, []string{"service"}),

		BookingsArchived: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bookings_archived",
			Help: "Archived bookings in the last snapshot",
		}, []string{"service"}),

		BookingsExpired: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bookings_expired",
			Help: "Active bookings past their expiry instant",
		}, []string{"service"}),

		BookingsNearingExpiry: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bookings_nearing_expiry",
			Help: "Active bookings within the nearing-expiry window",
		}, []string{"service"}),

		SweepArchivedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sweep_archived_total",
			Help: "Bookings archived by the expiry sweep",
		}, []string{"service"}),

		SweepFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sweep_failures_total",
			Help: "Archive failures during the expiry sweep",
		}, []string{"service"}),
	}
}

// Service возвращает имя сервиса, с которым зарегистрированы метрики
func (m *Metrics) Service() string {
	return m.service
}

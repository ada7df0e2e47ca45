package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	SlotsGenerated     *prometheus.HistogramVec
	SlotChecksTotal    *prometheus.CounterVec
	DegradedReadsTotal *prometheus.CounterVec

	service string
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		SlotsGenerated: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "availability_slots_generated",
			Help:    "Number of available slots returned per availability query",
			Buckets: []float64{0, 1, 2, 4, 8, 12, 16, 24, 32, 48},
		}, []string{"service"}),

		SlotChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_slot_checks_total",
			Help: "Slot confirmation checks by result",
		}, []string{"service", "result"}),

		DegradedReadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_degraded_reads_total",
			Help: "Constraint sources treated as empty because the upstream read failed",
		}, []string{"service", "source"}),

		service: serviceName,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.SlotsGenerated,
		m.SlotChecksTotal,
		m.DegradedReadsTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

// ObservePool публикует статистику пула соединений
func (m *Metrics) ObservePool(stats sql.DBStats) {
	m.DBOpenConnections.WithLabelValues(m.service).Set(float64(stats.OpenConnections))
	m.DBInUseConnections.WithLabelValues(m.service).Set(float64(stats.InUse))
	m.DBIdleConnections.WithLabelValues(m.service).Set(float64(stats.Idle))
	m.DBWaitCount.WithLabelValues(m.service).Set(float64(stats.WaitCount))
}

// ObserveSlotsGenerated фиксирует количество выданных слотов
func (m *Metrics) ObserveSlotsGenerated(count int) {
	m.SlotsGenerated.WithLabelValues(m.service).Observe(float64(count))
}

// IncSlotCheck фиксирует результат проверки слота
func (m *Metrics) IncSlotCheck(available bool) {
	result := "unavailable"
	if available {
		result = "available"
	}
	m.SlotChecksTotal.WithLabelValues(m.service, result).Inc()
}

// IncDegradedRead фиксирует деградацию источника ограничений
func (m *Metrics) IncDegradedRead(source string) {
	m.DegradedReadsTotal.WithLabelValues(m.service, source).Inc()
}

// Noop реализация для отключенных метрик и тестов
type Noop struct{}

func (Noop) ObserveSlotsGenerated(int) {}
func (Noop) IncSlotCheck(bool)         {}
func (Noop) IncDegradedRead(string)    {}

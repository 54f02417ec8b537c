package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"guestportal-service/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthErrorsCounter   prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Entity mutation metrics
	LinkOperationsCounter     prometheus.CounterVec
	ActivityOperationsCounter prometheus.CounterVec
	HotelSavesCounter         prometheus.Counter

	// Optimistic-update failure metrics
	RollbackCounter        prometheus.CounterVec
	ReorderPartialFailures prometheus.Counter

	// Session metrics
	SessionsLoadedCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"reason"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	LinkOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_link_operations_total",
			Help: "Total number of link mutations",
		},
		[]string{"operation"},
	)

	ActivityOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_activity_operations_total",
			Help: "Total number of activity mutations",
		},
		[]string{"operation"},
	)

	HotelSavesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_hotel_saves_total",
			Help: "Total number of hotel branding saves",
		},
	)

	RollbackCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_optimistic_rollbacks_total",
			Help: "Total number of optimistic updates rolled back after a persistence failure",
		},
		[]string{"entity"},
	)

	ReorderPartialFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_reorder_partial_failures_total",
			Help: "Total number of reorders that persisted only a prefix of the new order",
		},
	)

	SessionsLoadedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_dashboard_sessions_loaded_total",
			Help: "Total number of dashboard sessions built from the durable store",
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordLinkOperation increments the counter for link mutations
func RecordLinkOperation(operation string) {
	LinkOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordActivityOperation increments the counter for activity mutations
func RecordActivityOperation(operation string) {
	ActivityOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordRollback increments the rollback counter for an entity type
func RecordRollback(entity string) {
	RollbackCounter.WithLabelValues(entity).Inc()
}

// RecordAuthError increments the counter for a failed authentication
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

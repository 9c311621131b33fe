package metrics

import (
	"errors"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, route pattern, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// RequestTotal counts HTTP requests by method, route pattern, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// StoreOperations counts repository calls by entity (user, post), action and result.
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of store operations by entity, action and result",
		},
		[]string{"entity", "action", "result"},
	)
)

// Store operation results.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// UnmatchedRoute labels requests no route matched, keeping stray URLs in one series.
const UnmatchedRoute = "unmatched"

var initOnce sync.Once

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, StoreOperations)
	})
}

// RecordRequest records duration and count for an HTTP request. route is the
// matched pattern such as /users/edit/{id}, never the raw path.
func RecordRequest(method, route string, statusCode int, durationSeconds float64) {
	if route == "" {
		route = UnmatchedRoute
	}
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, route, status).Inc()
}

// RecordStoreOp counts one store operation. notFound is the sentinel the caller
// treats as absence; any other non-nil err counts as a failure.
func RecordStoreOp(entity, action string, err, notFound error) {
	result := ResultOK
	switch {
	case err == nil:
	case notFound != nil && errors.Is(err, notFound):
		result = ResultNotFound
	default:
		result = ResultError
	}
	StoreOperations.WithLabelValues(entity, action, result).Inc()
}

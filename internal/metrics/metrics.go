// Package metrics defines the Prometheus collectors shared by the store,
// the query pipeline, the search engine and the HTTP layer.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"inkpress/internal/models"
)

var (
	// StoreOperationsTotal counts record store calls.
	// Labels: kind (collection), op (get, all, by_index, add, put, delete, count, increment),
	// result (ok, not_found, conflict, error)
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkpress_store_operations_total",
			Help: "Total number of record store operations",
		},
		[]string{"kind", "op", "result"},
	)

	// StoreDurationSeconds tracks record store call latency.
	StoreDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkpress_store_duration_seconds",
			Help:    "Record store operation duration distribution",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"kind", "op"},
	)

	// QueryMatchedRecords tracks how many records survive filtering, before pagination.
	QueryMatchedRecords = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkpress_query_matched_records",
			Help:    "Filtered record count per query before pagination",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"kind"},
	)

	// SideCallFailuresTotal counts swallowed failures of best-effort side calls.
	// Labels: task (search_history, search_analytics, article_counts)
	SideCallFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkpress_side_call_failures_total",
			Help: "Best-effort side calls that failed and were swallowed",
		},
		[]string{"task"},
	)

	// PanicsRecoveredTotal counts handler panics turned into 500 responses.
	PanicsRecoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkpress_http_panics_recovered_total",
			Help: "Handler panics recovered by the HTTP middleware",
		},
		[]string{"method"},
	)

	// HTTPRequestsTotal counts API requests by route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkpress_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDurationSeconds tracks API request latency.
	HTTPDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkpress_http_duration_seconds",
			Help:    "HTTP request duration distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// ObserveStore records one store operation.
func ObserveStore(kind, op string, start time.Time, err error) {
	StoreOperationsTotal.WithLabelValues(kind, op, resultLabel(err)).Inc()
	StoreDurationSeconds.WithLabelValues(kind, op).Observe(time.Since(start).Seconds())
}

// ObserveQuery records the filtered size of a query.
func ObserveQuery(kind string, matched int) {
	QueryMatchedRecords.WithLabelValues(kind).Observe(float64(matched))
}

// SideCallFailed records a swallowed best-effort failure.
func SideCallFailed(task string) {
	SideCallFailuresTotal.WithLabelValues(task).Inc()
}

// ObserveHTTP records one HTTP request.
func ObserveHTTP(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDurationSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}

// PanicRecovered records one recovered handler panic.
func PanicRecovered(method string) {
	PanicsRecoveredTotal.WithLabelValues(method).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	case errors.Is(err, models.ErrConflict):
		return "conflict"
	}
	return "error"
}

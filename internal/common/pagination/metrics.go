package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts the total number of feed pagination requests.
	// Labels: outcome ("first_page", "continuation"), has_more ("true"/"false")
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_pagination_requests_total",
			Help: "Total number of feed pagination requests",
		},
		[]string{"outcome", "has_more"},
	)

	// DurationSeconds tracks pagination query duration distribution.
	// Labels: operation (service, repository)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_pagination_duration_seconds",
			Help:    "Feed pagination duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, database)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_pagination_errors_total",
			Help: "Total number of feed pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a served pagination page.
func RecordRequest(continuation, hasMore bool) {
	outcome := "first_page"
	if continuation {
		outcome = "continuation"
	}
	more := "false"
	if hasMore {
		more = "true"
	}
	RequestsTotal.WithLabelValues(outcome, more).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// RecordError records an error metric.
// errorType should be one of: "validation", "database"
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Access-control metrics
var (
	// RoleMutationsTotal tracks role mutations by operation and outcome.
	RoleMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "role_mutations_total",
			Help: "Total number of role mutations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// UserMutationsTotal tracks user mutations by operation and outcome.
	UserMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_mutations_total",
			Help: "Total number of user mutations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// PermissionChecksTotal tracks permission checks by result.
	PermissionChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "permission_checks_total",
			Help: "Total number of permission checks by result",
		},
		[]string{"result"},
	)
)

// HTTP metrics
var (
	// HTTPRequestsTotal tracks HTTP requests by method, path and code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "code"},
	)

	// HTTPRequestDuration tracks request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)
)

// Outcome labels for mutation counters.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

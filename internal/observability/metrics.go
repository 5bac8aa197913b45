package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the Pokémon catalog service.
// All collectors are registered via promauto against the supplied registerer.
type Metrics struct {
	// HTTPRequestsTotal counts HTTP requests, labeled by method, route and status class.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes HTTP request duration in seconds, labeled by method and route.
	HTTPRequestDuration *prometheus.HistogramVec

	// RepositoryOperationsTotal counts repository operations, labeled by entity and operation.
	RepositoryOperationsTotal *prometheus.CounterVec

	// RepositoryOperationErrors counts failed repository operations, labeled by entity and operation.
	RepositoryOperationErrors *prometheus.CounterVec

	// DuplicateNameRejections counts creations rejected by the advisory name check, labeled by entity.
	DuplicateNameRejections *prometheus.CounterVec
}

// NewMetrics creates and registers all service metrics with the given registerer.
// Pass prometheus.DefaultRegisterer in production; tests use a fresh
// prometheus.NewRegistry to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pokereview",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pokereview",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		RepositoryOperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pokereview",
			Subsystem: "repository",
			Name:      "operations_total",
			Help:      "Total number of repository operations.",
		}, []string{"entity", "operation"}),

		RepositoryOperationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pokereview",
			Subsystem: "repository",
			Name:      "operation_errors_total",
			Help:      "Total number of repository operations that returned an error.",
		}, []string{"entity", "operation"}),

		DuplicateNameRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pokereview",
			Subsystem: "catalog",
			Name:      "duplicate_name_rejections_total",
			Help:      "Creations rejected because an entity with the same name already existed.",
		}, []string{"entity"}),
	}
}

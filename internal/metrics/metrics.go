package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the platform.
// Construct it exactly once per process; promauto registers against
// the default registry.
type MetricsRegistry struct {
	// HTTP metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business metrics
	ContributionsTotal      prometheus.Counter
	ContributionAmountTotal prometheus.Counter
	TicketsIssuedTotal      prometheus.Counter
	UsersRegisteredTotal    prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mtaani_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mtaani_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mtaani_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mtaani_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mtaani_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		ContributionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "mtaani_contributions_total",
				Help: "Total harambee contributions accepted",
			},
		),
		ContributionAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "mtaani_contribution_amount_total",
				Help: "Total amount contributed across all harambees",
			},
		),
		TicketsIssuedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "mtaani_tickets_issued_total",
				Help: "Total event tickets issued",
			},
		),
		UsersRegisteredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "mtaani_users_registered_total",
				Help: "Total users created, via registration or first authenticated write",
			},
		),
	}
}

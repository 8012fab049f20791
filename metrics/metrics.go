package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for LookupsTotal
const (
	ResultSuccess         = "success"
	ResultTransportError  = "transport_error"
	ResultValidationError = "validation_error"
	ResultDiscarded       = "discarded"
)

// Metrics holds the Prometheus collectors for one lookup session. Each
// instance owns its registry so tests and multiple sessions never collide.
type Metrics struct {
	registry *prometheus.Registry

	LookupsTotal      *prometheus.CounterVec
	LookupDuration    prometheus.Histogram
	LookupsInFlight   prometheus.Gauge
	SubmitsSuppressed prometheus.Counter
	ErrorsDismissed   prometheus.Counter

	HTTPRequestsTotal *prometheus.CounterVec
}

// New creates and registers all metrics on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		LookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iplookup_lookups_total",
				Help: "Lookup submissions by outcome",
			},
			[]string{"result"},
		),

		LookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "iplookup_lookup_duration_seconds",
				Help:    "Round trip time of lookup requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		LookupsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "iplookup_lookups_in_flight",
				Help: "Lookup requests currently outstanding",
			},
		),

		SubmitsSuppressed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "iplookup_submits_suppressed_total",
				Help: "Submissions ignored because a lookup was already in flight",
			},
		),

		ErrorsDismissed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "iplookup_errors_dismissed_total",
				Help: "Error messages cleared by the display timeout",
			},
		),

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iplookup_http_requests_total",
				Help: "Requests served by the metrics endpoint",
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

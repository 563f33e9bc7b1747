package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the registry every caretrain collector is registered on.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// SchemaStatements counts schema statements by outcome: applied, skipped
	// or failed.
	SchemaStatements = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "caretrain",
		Name:      "schema_statements_total",
		Help:      "Schema statements executed, by outcome.",
	}, []string{"outcome"})

	// SeedRuns counts seed attempts by outcome: seeded or skipped.
	SeedRuns = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "caretrain",
		Name:      "seed_runs_total",
		Help:      "Seed writer runs, by outcome.",
	}, []string{"outcome"})

	// PasswordResets counts demo password reset runs.
	PasswordResets = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "caretrain",
		Name:      "demo_password_resets_total",
		Help:      "Demo account password resets.",
	})

	// HTTPRequests counts API requests by method, route pattern and status.
	HTTPRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "caretrain",
		Name:      "http_requests_total",
		Help:      "HTTP requests served.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by method and route pattern.
	HTTPDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "caretrain",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

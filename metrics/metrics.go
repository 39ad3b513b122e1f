// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	GraphQLRequests *prometheus.CounterVec
	GraphQLDuration *prometheus.HistogramVec
	PageRenders     *prometheus.CounterVec
	Logins          *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them, with the Go and process
// collectors, on registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		GraphQLRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "survey_editor",
			Name:      "graphql_requests_total",
			Help:      "GraphQL operations sent, by operation and outcome.",
		}, []string{"operation", "status"}),
		GraphQLDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "survey_editor",
			Name:      "graphql_request_duration_seconds",
			Help:      "GraphQL round trip latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "survey_editor",
			Name:      "page_renders_total",
			Help:      "Pages served, by page and outcome.",
		}, []string{"page", "outcome"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "survey_editor",
			Name:      "logins_total",
			Help:      "Sign-in and token refresh attempts, by outcome.",
		}, []string{"status"}),
		registry: registry,
	}

	registry.MustRegister(
		m.GraphQLRequests,
		m.GraphQLDuration,
		m.PageRenders,
		m.Logins,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveGraphQL(operation, status string, elapsed time.Duration) {
	if m == nil || m.GraphQLRequests == nil {
		return
	}

	m.GraphQLRequests.WithLabelValues(operation, status).Inc()
	if m.GraphQLDuration != nil {
		m.GraphQLDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) IncPage(page, outcome string) {
	if m == nil || m.PageRenders == nil {
		return
	}

	m.PageRenders.WithLabelValues(page, outcome).Inc()
}

func (m *Metrics) IncLogin(status string) {
	if m == nil || m.Logins == nil {
		return
	}

	m.Logins.WithLabelValues(status).Inc()
}

// Handler serves the exposition format of the registry passed to New.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

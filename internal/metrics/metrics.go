// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the service records into.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	Registrations prometheus.Counter
	TeamsAdmitted prometheus.Counter
	Documents     prometheus.Counter
	Votes         prometheus.Counter
	Compensations prometheus.Counter
}

// New creates a Metrics with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hackfest",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hackfest",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "hackfest",
			Name:      "registrations_total",
			Help:      "Participant registrations accepted.",
		}),
		TeamsAdmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "hackfest",
			Name:      "teams_admitted_total",
			Help:      "Teams admitted to the event.",
		}),
		Documents: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "hackfest",
			Name:      "documents_total",
			Help:      "Progress documents stored.",
		}),
		Votes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "hackfest",
			Name:      "votes_total",
			Help:      "Final votes recorded.",
		}),
		Compensations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "hackfest",
			Name:      "compensations_total",
			Help:      "In-memory mutations rolled back after a store failure.",
		}),
	}
}

// Registry exposes the underlying registry for the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

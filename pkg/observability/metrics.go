// Package observability exposes widget activity as Prometheus metrics.
// Metrics are fed through domain.Hooks so the core stays free of any
// metrics dependency.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/resultflow/careflow/pkg/domain"
)

// Metrics holds the Prometheus collectors for widget activity.
type Metrics struct {
	messages  *prometheus.CounterVec
	checkouts prometheus.Counter
	abandoned prometheus.Counter
	surfaces  *prometheus.CounterVec
	httpReqs  *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careflow",
			Name:      "messages_total",
			Help:      "Messages appended to conversation logs, by role.",
		}, []string{"role"}),
		checkouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "careflow",
			Name:      "checkouts_completed_total",
			Help:      "Checkout instances that reached the complete step.",
		}),
		abandoned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "careflow",
			Name:      "carts_abandoned_total",
			Help:      "Cart surfaces closed before checkout completed.",
		}),
		surfaces: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careflow",
			Name:      "surface_changes_total",
			Help:      "Top-level surface transitions, by target surface.",
		}, []string{"surface"}),
		httpReqs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careflow",
			Name:      "http_requests_total",
			Help:      "HTTP requests served by the session API, by route and status.",
		}, []string{"route", "status"}),
	}
	reg.MustRegister(m.messages, m.checkouts, m.abandoned, m.surfaces, m.httpReqs)
	return m
}

// Hooks returns domain hooks that feed the collectors. Merge with any other
// hooks the host registers.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnMessage: func(msg domain.Message) {
			m.messages.WithLabelValues(string(msg.Role)).Inc()
		},
		OnCheckoutComplete: func() {
			m.checkouts.Inc()
		},
		OnCartAbandoned: func() {
			m.abandoned.Inc()
		},
		OnSurfaceChange: func(s domain.Surface) {
			m.surfaces.WithLabelValues(string(s)).Inc()
		},
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, status string) {
	m.httpReqs.WithLabelValues(route, status).Inc()
}

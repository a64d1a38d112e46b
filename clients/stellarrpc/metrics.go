package stellarrpc

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// withMetrics records a Prometheus counter and duration summary for each
// RPC call that Client.call makes, per method, modeled on support/db's SessionWithMetrics.Get: a
// CounterVec keyed on method/error and a SummaryVec observing call latency.
type withMetrics struct {
	registry             *prometheus.Registry
	callCounter          *prometheus.CounterVec
	callDurationSummary  *prometheus.SummaryVec
}

func newWithMetrics(namespace string, registry *prometheus.Registry) *withMetrics {
	m := &withMetrics{registry: registry}

	m.callCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stellarrpc",
			Name:      "call_total",
		},
		[]string{"method", "error"},
	)
	registry.MustRegister(m.callCounter)

	m.callDurationSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  namespace,
			Subsystem:  "stellarrpc",
			Name:       "call_duration_seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"method", "error"},
	)
	registry.MustRegister(m.callDurationSummary)

	return m
}

func (m *withMetrics) observe(method string, err error, seconds float64) {
	labels := prometheus.Labels{"method": method, "error": fmt.Sprint(err != nil)}
	m.callCounter.With(labels).Inc()
	m.callDurationSummary.With(labels).Observe(seconds)
}

func (m *withMetrics) close() {
	m.registry.Unregister(m.callCounter)
	m.registry.Unregister(m.callDurationSummary)
}

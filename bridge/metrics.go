// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "densecalc"

// Metrics contains Prometheus collectors for boundary calls.
type Metrics struct {
	// calls counts completed calls by operation and outcome kind.
	calls *prometheus.CounterVec

	// duration observes wall time per operation, failures included.
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// An empty namespace selects DefaultNamespace. On failure nothing stays
// registered, so the call can be retried.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "bridge",
				Name:      "calls_total",
				Help:      "Total number of boundary calls by operation and outcome",
			},
			[]string{"op", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "bridge",
				Name:      "call_duration_seconds",
				Help:      "Boundary call latency in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 7),
			},
			[]string{"op"},
		),
	}
	collectors := []prometheus.Collector{m.calls, m.duration}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("bridge: register metrics: %w", err)
		}
	}

	return m, nil
}

// observe records one finished call. A nil receiver is a no-op.
func (m *Metrics) observe(op string, kind Kind, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(op, kind.String()).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

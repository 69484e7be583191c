// Package metrics exposes Prometheus collectors for the relay.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels
const (
	OutcomeSuccess         = "success"
	OutcomeNotConfigured   = "not_configured"
	OutcomeTransportError  = "transport_error"
	OutcomeExternalError   = "external_error"
	OutcomeUnexpectedError = "unexpected_status"
)

// RelayMetrics counts forwarded submissions and their latency
type RelayMetrics struct {
	forwards *prometheus.CounterVec
	statuses *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewRelayMetrics creates the relay collectors and registers them with registerer
func NewRelayMetrics(registerer prometheus.Registerer) (*RelayMetrics, error) {
	forwards := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "registration",
			Subsystem: "relay",
			Name:      "forwards_total",
			Help:      "No of submissions handled by the relay partitioned by outcome",
		},
		[]string{"outcome"},
	)

	statuses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "registration",
			Subsystem: "relay",
			Name:      "external_status_total",
			Help:      "No of responses from the external endpoint partitioned by status class",
		},
		[]string{"class"},
	)

	latency := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "registration",
			Subsystem: "relay",
			Name:      "forward_duration_seconds",
			Help:      "Duration of the outbound call to the external endpoint",
			Buckets:   prometheus.DefBuckets,
		},
	)

	for _, c := range []prometheus.Collector{forwards, statuses, latency} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return &RelayMetrics{
		forwards: forwards,
		statuses: statuses,
		latency:  latency,
	}, nil
}

// ObserveForward records one relay attempt
func (m *RelayMetrics) ObserveForward(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.forwards.WithLabelValues(outcome).Inc()
	if outcome != OutcomeNotConfigured {
		m.latency.Observe(duration.Seconds())
	}
}

// ObserveStatus records the class (2xx, 3xx, ...) of an external response status
func (m *RelayMetrics) ObserveStatus(status int) {
	if m == nil {
		return
	}
	m.statuses.WithLabelValues(StatusClass(status)).Inc()
}

// StatusClass maps 302 to "3xx"
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "other"
	}
	return string(rune('0'+status/100)) + "xx"
}

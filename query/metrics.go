// SPDX-License-Identifier: MIT

package query

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Metrics collects Prometheus metrics for shortest-path queries.
//
// Metrics exposed (namespace "sparsepath"):
//
//  1. queries_total (counter): queries run. Labels: outcome (found/unreachable/error).
//  2. query_duration_seconds (histogram): wall time of one query.
//  3. nodes_settled (histogram): nodes finalized per successful query.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	queries  *prometheus.CounterVec
	duration prometheus.Histogram
	settled  prometheus.Histogram
}

// NewMetrics creates and registers the query metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice on the same
// registerer panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sparsepath",
			Name:      "queries_total",
			Help:      "Shortest-path queries run, by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sparsepath",
			Name:      "query_duration_seconds",
			Help:      "Wall time of one shortest-path query",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12), // 1µs to ~4s
		}),
		settled: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sparsepath",
			Name:      "nodes_settled",
			Help:      "Nodes finalized per successful shortest-path query",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
	}
}

func (m *Metrics) observe(outcome string, elapsed time.Duration, settled int) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	if outcome != OutcomeError {
		m.settled.Observe(float64(settled))
	}
}

// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: Querier type, options and the Cost/Path/Query/NodeCount operations.

package query

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/sparsepath/core"
	"github.com/katalvlaran/sparsepath/dijkstra"
)

// Unreachable is the cost reported by Cost when no route exists or an
// endpoint is absent.
const Unreachable = dijkstra.Unreachable

// Querier runs shortest-path queries with a shared configuration.
type Querier struct {
	logger     *slog.Logger
	metrics    *Metrics
	searchOpts []dijkstra.Option
}

// Option configures a Querier.
type Option func(*Querier)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("query: WithLogger(nil)")
	}
	return func(q *Querier) {
		q.logger = l
	}
}

// WithMetrics records every query into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(q *Querier) {
		q.metrics = m
	}
}

// WithSearchOptions forwards opts to every dijkstra search.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(q *Querier) {
		q.searchOpts = append(q.searchOpts, opts...)
	}
}

// New builds a Querier. Without options it logs nowhere and records no metrics.
func New(opts ...Option) *Querier {
	q := &Querier{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Query computes the route from origin to dest on a fresh working set.
func (q *Querier) Query(g *core.Graph, origin, dest core.NodeID) (dijkstra.Result, error) {
	start := time.Now()
	res, err := dijkstra.ShortestPath(g, origin, dest, q.searchOpts...)
	elapsed := time.Since(start)

	if err != nil {
		q.logger.Warn("shortest path failed",
			slog.Uint64("origin", uint64(origin)),
			slog.Uint64("dest", uint64(dest)),
			slog.String("error", err.Error()),
		)
		q.metrics.observe(OutcomeError, elapsed, 0)
		return res, err
	}

	outcome := OutcomeFound
	if !res.Found {
		outcome = OutcomeUnreachable
	}
	q.logger.Debug("shortest path",
		slog.Uint64("origin", uint64(origin)),
		slog.Uint64("dest", uint64(dest)),
		slog.Bool("found", res.Found),
		slog.Int64("cost", res.CostOrUnreachable()),
		slog.Int("hops", max(len(res.Path)-1, 0)),
		slog.Int("settled", res.Settled),
		slog.Duration("elapsed", elapsed),
	)
	q.metrics.observe(outcome, elapsed, res.Settled)

	return res, nil
}

// Cost returns the total weight of the cheapest route, 0 when origin == dest,
// or Unreachable when there is no route or either endpoint is absent.
func (q *Querier) Cost(g *core.Graph, origin, dest core.NodeID) int64 {
	res, err := q.Query(g, origin, dest)
	if err != nil {
		return Unreachable
	}

	return res.CostOrUnreachable()
}

// Path returns the node keys from origin to dest inclusive. It is empty when
// there is no route, when an endpoint is absent and when origin == dest.
func (q *Querier) Path(g *core.Graph, origin, dest core.NodeID) []core.NodeID {
	res, err := q.Query(g, origin, dest)
	if err != nil || !res.Found {
		return []core.NodeID{}
	}
	if res.Path == nil {
		return []core.NodeID{}
	}

	return res.Path
}

// NodeCount returns the number of nodes in g, 0 for a nil graph.
func (q *Querier) NodeCount(g *core.Graph) int {
	if g == nil {
		return 0
	}

	return g.NodeCount()
}

var defaultQuerier = New()

// Query runs Querier.Query with default settings.
func Query(g *core.Graph, origin, dest core.NodeID) (dijkstra.Result, error) {
	return defaultQuerier.Query(g, origin, dest)
}

// Cost runs Querier.Cost with default settings.
func Cost(g *core.Graph, origin, dest core.NodeID) int64 {
	return defaultQuerier.Cost(g, origin, dest)
}

// Path runs Querier.Path with default settings.
func Path(g *core.Graph, origin, dest core.NodeID) []core.NodeID {
	return defaultQuerier.Path(g, origin, dest)
}

// NodeCount runs Querier.NodeCount.
func NodeCount(g *core.Graph) int {
	return defaultQuerier.NodeCount(g)
}

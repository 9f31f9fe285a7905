// Package query is the stateless PathQuery façade over dijkstra.
//
// Two flavours are offered:
//
//   - Cost, Path and NodeCount keep the historical sentinel contract: an
//     absent endpoint or an unreachable destination yields cost -1
//     (Unreachable) and an empty path. Nothing is returned as an error.
//   - Query returns the tagged dijkstra.Result together with any error
//     (ErrNilGraph, ErrNodeNotFound, ErrNegativeWeight, ...).
//
// Every call recomputes from a fresh working set: asking for the cost and then
// for the path of the same pair runs the search twice. Nothing is cached.
//
// A Querier carries the optional ambient parts: a *slog.Logger (Debug per
// query, Warn per failure) and Prometheus *Metrics. The package-level
// functions use a Querier with a discarding logger and no metrics.
//
//	reg := prometheus.NewRegistry()
//	q := query.New(
//		query.WithLogger(slog.Default()),
//		query.WithMetrics(query.NewMetrics(reg)),
//		query.WithSearchOptions(dijkstra.WithFrontier(dijkstra.FrontierHeap)),
//	)
//	path := q.Path(g, 1, 6)
//
// A Querier holds no per-query state and may be shared between goroutines.
package query

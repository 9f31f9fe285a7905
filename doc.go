// Package sparsepath answers single-pair shortest-path queries over sparse,
// directed, integer-weighted graphs whose nodes are keyed by arbitrary
// unsigned integers.
//
// 🚀 What is sparsepath?
//
//	A small, thread-safe graph library plus a command-line demo:
//		• Core primitives: add nodes & edges, query weights, neighbours and counts
//		• Shortest paths: Dijkstra with a linear open set or a binary heap
//		• Query façade: Cost / Path with the -1 / empty-path convention
//		• Traversal: BFS reachability
//		• Builders: the six-node sample network and seeded random sparse graphs
//		• Rendering: graph listings, routes and average route cost
//
// Packages:
//
//	core/       Graph, NodeID, Edge; RWMutex-guarded storage with dense node slots
//	dijkstra/   ShortestPath, Search (reusable per-query working set), frontiers
//	query/      Querier with slog logging and Prometheus metrics; Cost, Path, NodeCount
//	bfs/        breadth-first traversal and Reachable
//	builder/    Sample, NewRandomSparse, weight functions
//	render/     text output for graphs, routes and the average-cost sweep
//	cmd/sparsepath  interactive binary (flags, YAML config, /metrics)
//
// Quick example (the sample network):
//
//	1→2 (1)   1→3 (3)
//	2→3 (1)   2→4 (1)
//	3→5 (7)   3→6 (4)
//	4→6 (5)
//
//	g := builder.Sample()
//	path := query.Path(g, 1, 6) // [1 2 3 6]
//	cost := query.Cost(g, 1, 6) // 6
//
// Queries never write to the Graph: every call builds its own working set,
// so concurrent read-only queries on one Graph are safe.
//
//	go install github.com/katalvlaran/sparsepath/cmd/sparsepath@latest
package sparsepath

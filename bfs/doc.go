// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → hops from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Hooks: OnEnqueue (when a node is first seen) and OnVisit (when it is
//     dequeued; may abort with an error).
//   - WithFilterEdge skips individual edges; WithMaxDepth bounds the search.
//   - Reachable(g, from, to) answers the yes/no question and stops early.
//
// Why
//
//   - Reachability does not depend on weights, so it cross-checks what
//     dijkstra reports as unreachable and lets the demo explain "No route
//     found" without a weighted search.
//
// Determinism
//
//	core.Graph.Neighbors returns edges sorted by destination key and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E log d) (neighbour lists are sorted per node)
//   - Memory: O(V) for queue, Depth, Parent and the sparse seen-set.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start node does not exist.
//   - ErrOptionViolation  for a negative MaxDepth.
//   - ErrNeighbors        if core.Graph.Neighbors fails.
//   - ctx.Err()           on cancellation.
//   - Wrapped OnVisit errors.
package bfs

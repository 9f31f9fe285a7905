// Package dijkstra provides single-pair shortest paths over a core.Graph with
// non-negative integer edge weights.
//
// Overview:
//
//   - ShortestPath(g, origin, dest) returns the cheapest route as an ordered
//     list of node keys plus its total cost, or Found == false.
//   - The search stops as soon as dest is settled; nodes beyond it are never
//     expanded.
//   - A Search holds all per-query state (cost, predecessor, visited) indexed
//     by the graph's dense node slots, with visited/discovered membership kept
//     in sparse sets. The graph is never written by a query.
//
// Algorithm:
//
//  1. Reset the working set: every node unreached, unvisited, its own predecessor.
//  2. Make the origin the closed node with cost 0.
//  3. Relax every outgoing edge of the closed node: undiscovered neighbours
//     join the open set; a neighbour's cost and predecessor are replaced when
//     it had no cost or the route through the closed node is strictly cheaper.
//  4. If the open set is empty, stop: dest is unreachable.
//  5. Take the open node with the lowest cost (first discovered wins ties)
//     as the new closed node. If it is dest, stop. Otherwise go to 3.
//  6. Walk predecessors from dest back to origin, summing hop weights; the sum
//     equals dest's recorded cost.
//
// Frontier strategies:
//
//   - FrontierLinear (default): the open set is a slice in discovery order and
//     the minimum is found by a linear scan. Deterministic tie-breaking.
//   - FrontierHeap: container/heap with lazy decrease-key, O(log V) per
//     operation. Equal-cost ties are broken by push order, so when several
//     shortest paths exist the one returned may differ from FrontierLinear.
//     The cost is always the same.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         nil graph.
//   - ErrNodeNotFound:     origin or destination absent.
//   - ErrNegativeWeight:   WithStrict() and a negative weight exists.
//   - ErrInconsistentPath: the graph changed under a running query.
//
// Unreachable destinations are not errors: Result.Found is false and
// Result.CostOrUnreachable() reports -1.
//
// Thread safety:
//
//   - Any number of Searches may run concurrently against one graph.
//   - A single Search must not be shared between goroutines.
//   - Mutating the graph during a query is not supported; serialize writers
//     or Clone the graph per worker.
package dijkstra

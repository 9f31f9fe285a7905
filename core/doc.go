// Package core provides a thread-safe in-memory directed weighted Graph keyed
// by caller-assigned unsigned integers, the storage layer under the shortest
// path search in package dijkstra.
//
// The Graph G = (V,E) has these properties:
//
//   - Nodes are keyed by NodeID (uint64). Keys need not be dense or zero-based.
//   - Each node owns its outgoing edges: to → weight, last write wins.
//   - An edge may name a destination that does not exist yet (a dead edge);
//     lookups treat such a destination as absent, never as an error.
//   - Anti-parallel suppression by default: A→B is rejected when B→A is
//     already stored, so every unordered pair carries at most one edge.
//     WithAntiParallelEdges lifts the restriction.
//   - Self-loops are rejected unless WithLoops is given.
//   - Weights are int64. Negative weights are stored as given unless
//     WithStrictWeights is set; shortest-path correctness requires w ≥ 0.
//   - Every node receives a dense slot so algorithms can size per-query
//     arrays and sparse sets with Slots().
//
// Configuration Options (GraphOption):
//
//	– WithAntiParallelEdges()   allow A→B together with B→A
//	– WithLoops()               allow v→v
//	– WithStrictWeights()       reject w < 0 with ErrInvalidWeight
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id NodeID)                       // O(1); duplicate key replaces the node
//	RemoveNode(id NodeID) error              // O(1)
//	HasNode(id NodeID) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to NodeID, w int64) error  // O(1)
//	SetEdgeValue(from, to NodeID, w int64) error
//	RemoveEdge(from, to NodeID) error
//	HasEdge(from, to NodeID) bool
//	EdgeValue(from, to NodeID) (int64, bool)
//
//	// Query
//	Neighbors(id NodeID) ([]Edge, error)     // O(d·log d), sorted by To
//	Nodes() []NodeID                         // O(V·log V), sorted
//	Edges() []Edge                           // O(E·log E), sorted by (From, To)
//	NodeCount() int, EdgeCount() int, Stats() GraphStats
//
//	// Cloning
//	Clone() *Graph                           // O(V+E) deep copy
//	Clear()
//
// Errors:
//
//	ErrNodeNotFound   – missing node
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – self-loop when loops disabled
//	ErrAntiParallel   – reverse edge already stored
//	ErrInvalidWeight  – negative weight on a strict graph
//
// Concurrency: one sync.RWMutex guards the whole graph. Concurrent readers
// (including shortest-path queries) never block each other. Mutations
// concurrent with a running query are race-free but the query may observe a
// mix of old and new state; serialize them, or Clone one graph per worker.
package core

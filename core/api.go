// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for policy flags and a Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	AntiParallel  bool // WithAntiParallelEdges was set
	Loops         bool // WithLoops was set
	StrictWeights bool // WithStrictWeights was set

	NodeCount     int // stored nodes
	EdgeCount     int // stored edges, dead edges included
	DeadEdgeCount int // edges whose destination is absent
	Slots         int // dense slot capacity
}

// AntiParallel reports whether A→B and B→A may coexist.
// Complexity: O(1).
func (g *Graph) AntiParallel() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowAntiParallel
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// StrictWeights reports whether negative weights are rejected.
// Complexity: O(1).
func (g *Graph) StrictWeights() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strictWeights
}

// Stats produces a read-only snapshot of flags and counts, including the
// number of dead edges.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AntiParallel:  g.allowAntiParallel,
		Loops:         g.allowLoops,
		StrictWeights: g.strictWeights,
		NodeCount:     len(g.nodes),
		EdgeCount:     g.edgeCount,
		Slots:         g.nextSlot,
	}
	for _, n := range g.nodes {
		for to := range n.edges {
			if _, ok := g.nodes[to]; !ok {
				stats.DeadEdgeCount++
			}
		}
	}

	return stats
}

// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and reset.

package core

// Clone returns a deep copy of the Graph: flags, nodes, slots and edges.
// The copy shares nothing with g, so it can be mutated or handed to another
// worker independently.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowAntiParallel: g.allowAntiParallel,
		allowLoops:        g.allowLoops,
		strictWeights:     g.strictWeights,
		nodes:             make(map[NodeID]*node, len(g.nodes)),
		nextSlot:          g.nextSlot,
		edgeCount:         g.edgeCount,
	}
	for id, n := range g.nodes {
		edges := make(map[NodeID]int64, len(n.edges))
		for to, w := range n.edges {
			edges[to] = w
		}
		clone.nodes[id] = &node{id: id, slot: n.slot, edges: edges}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Slot numbering restarts at zero.
//
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[NodeID]*node)
	g.nextSlot = 0
	g.edgeCount = 0
}

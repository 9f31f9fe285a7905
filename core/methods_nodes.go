// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns keys sorted ascending.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "slices"

// AddNode inserts a node with an empty edge set.
//
// Behavior highlights:
//   - Adding an existing key replaces that node: its outgoing edges are
//     dropped and EdgeCount shrinks accordingly. The node keeps its slot.
//   - Edges on other nodes that already point at id become live again.
//
// Complexity:
//   - Time O(1) amortized, plus O(d) to discard a replaced node's edges.
func (g *Graph) AddNode(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if old, exists := g.nodes[id]; exists {
		g.edgeCount -= len(old.edges)
		g.nodes[id] = &node{id: id, slot: old.slot, edges: make(map[NodeID]int64)}
		return
	}

	g.nodes[id] = &node{id: id, slot: g.nextSlot, edges: make(map[NodeID]int64)}
	g.nextSlot++
}

// RemoveNode erases id and its outgoing edges.
// Edges from other nodes to id are kept and become dead edges.
//
// Errors:
//   - ErrNodeNotFound: if id is absent.
//
// Complexity: O(1) amortized.
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	g.edgeCount -= len(n.edges)
	delete(g.nodes, id)

	return nil
}

// HasNode reports whether id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node keys in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	slices.Sort(ids)

	return ids
}

// NodeCount returns the number of nodes currently stored.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Slot returns the dense index assigned to id, for algorithms that keep
// per-node state in slices or sparse sets sized by Slots().
//
// Errors:
//   - ErrNodeNotFound: if id is absent.
func (g *Graph) Slot(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return n.slot, nil
}

// Slots returns an upper bound (exclusive) on every slot handed out so far.
// Slots of removed nodes are not reused.
func (g *Graph) Slots() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nextSlot
}

// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetEdgeValue/RemoveEdge/HasEdge/
//       EdgeValue/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors() returns edges sorted by To asc.
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under the write lock.
//   - Read queries under the read lock.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// AddEdge stores the directed edge from→to with the given weight.
//
// Steps:
//  1. from must exist (ErrNodeNotFound).
//  2. from == to requires WithLoops (ErrLoopNotAllowed).
//  3. If to exists and already has an edge back to from, the edge is
//     rejected unless WithAntiParallelEdges (ErrAntiParallel).
//  4. Negative weights are rejected only WithStrictWeights (ErrInvalidWeight).
//  5. Insert, or overwrite the weight of an existing from→to edge.
//
// On any error the graph is left unchanged. to need not exist: such an
// edge is dead until a node with that key is added.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, from)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d→%d", ErrLoopNotAllowed, from, to)
	}
	if from != to && !g.allowAntiParallel {
		if dst, exists := g.nodes[to]; exists {
			if _, back := dst.edges[from]; back {
				return fmt.Errorf("%w: %d→%d already stored", ErrAntiParallel, to, from)
			}
		}
	}
	if g.strictWeights && weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrInvalidWeight, from, to, weight)
	}

	if _, exists := src.edges[to]; !exists {
		g.edgeCount++
	}
	src.edges[to] = weight

	return nil
}

// SetEdgeValue changes the weight of an existing edge from→to.
//
// Errors:
//   - ErrNodeNotFound / ErrEdgeNotFound: nothing to modify.
//   - ErrInvalidWeight: negative weight on a strict graph.
//
// Complexity: O(1).
func (g *Graph) SetEdgeValue(from, to NodeID, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, from)
	}
	if _, exists := src.edges[to]; !exists {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	if g.strictWeights && weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrInvalidWeight, from, to, weight)
	}
	src.edges[to] = weight

	return nil
}

// RemoveEdge deletes the edge from→to.
//
// Errors:
//   - ErrNodeNotFound / ErrEdgeNotFound: nothing to delete.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, from)
	}
	if _, exists := src.edges[to]; !exists {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	delete(src.edges, to)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge from→to is stored.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to NodeID) bool {
	_, ok := g.EdgeValue(from, to)

	return ok
}

// EdgeValue returns the weight of from→to. ok is false when from is absent
// or carries no such edge.
// Complexity: O(1).
func (g *Graph) EdgeValue(from, to NodeID) (weight int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src, exists := g.nodes[from]
	if !exists {
		return 0, false
	}
	weight, ok = src.edges[to]

	return weight, ok
}

// Neighbors returns the outgoing edges of id sorted by destination key.
// Dead edges (destination absent) are included; callers decide how to treat them.
//
// Errors:
//   - ErrNodeNotFound: if id is absent.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id NodeID) ([]Edge, error) {
	g.mu.RLock()
	src, ok := g.nodes[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]Edge, 0, len(src.edges))
	for to, w := range src.edges {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(a, b Edge) int { return cmp.Compare(a.To, b.To) })

	return out, nil
}

// Edges returns every stored edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, n := range g.nodes {
		for to, w := range n.edges {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	return out
}

// EdgeCount returns the number of stored edges, dead edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/sparsepath/core"
)

// entry pairs a node key with its dense slot in the graph.
type entry struct {
	id   core.NodeID
	slot int
}

// Search is the per-query working set of one shortest-path computation:
// tentative costs, predecessors and visited state, indexed by node slot.
// The graph itself is only read, so any number of Searches may run against
// one graph concurrently. A single Search is not safe for concurrent use.
//
// A Search may be reused; every Run starts from a fresh Reset.
type Search struct {
	g    *core.Graph
	opts Options

	origin    core.NodeID
	hasOrigin bool

	n       int             // slot capacity of the working set
	cost    []int64         // cost[slot]; valid iff reached contains slot
	via     []entry         // via[slot]; predecessor on the best known path
	reached *sparsesets.Set // slots with a recorded cost
	visited *sparsesets.Set // slots expanded (outgoing edges relaxed)
	seen    *sparsesets.Set // slots ever added to the open set
	front   frontier        // open set
	settled int             // nodes finalized in the current run
}

// NewSearch prepares a reusable Search over g.
func NewSearch(g *core.Graph, opts ...Option) *Search {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search{g: g, opts: cfg}
}

// Reset clears every per-node field: no node is reached or visited, every
// predecessor points at the node itself and the origin is unset. The
// working set grows to the graph's current slot capacity.
func (s *Search) Reset() {
	n := 0
	if s.g != nil {
		n = s.g.Slots()
	}
	if s.reached == nil || n > s.n {
		s.n = n
		s.cost = make([]int64, n)
		s.via = make([]entry, n)
		s.reached = sparsesets.New(n)
		s.visited = sparsesets.New(n)
		s.seen = sparsesets.New(n)
	} else {
		s.reached.Clear()
		s.visited.Clear()
		s.seen.Clear()
	}
	for i := range s.via {
		s.via[i] = entry{slot: -1}
	}

	switch s.opts.Frontier {
	case FrontierHeap:
		s.front = newHeapFrontier(n)
	default:
		s.front = newLinearFrontier(n)
	}
	s.hasOrigin = false
	s.settled = 0
}

// slotOf resolves id to a slot inside the working set. ok is false for
// absent nodes and for nodes added after the last Reset.
func (s *Search) slotOf(id core.NodeID) (int, bool) {
	if s.g == nil || s.reached == nil {
		return 0, false
	}
	slot, err := s.g.Slot(id)
	if err != nil || slot >= s.n {
		return 0, false
	}

	return slot, true
}

// SetNodeValue records cost as the tentative cost of id.
//
// Errors:
//   - ErrNodeNotFound: id is not in the graph (or not in the working set).
func (s *Search) SetNodeValue(id core.NodeID, cost int64) error {
	if s.reached == nil {
		s.Reset()
	}
	slot, ok := s.slotOf(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	s.cost[slot] = cost
	insert(s.reached, slot)

	return nil
}

// MakeOrigin marks id as the starting node: cost 0, visited, and recorded
// as this Search's origin.
//
// Errors:
//   - ErrNodeNotFound: id is not in the graph.
func (s *Search) MakeOrigin(id core.NodeID) error {
	if err := s.SetNodeValue(id, 0); err != nil {
		return err
	}
	slot, _ := s.slotOf(id)
	insert(s.visited, slot)
	s.origin = id
	s.hasOrigin = true

	return nil
}

// insert adds slot to set unless it is already present.
func insert(set *sparsesets.Set, slot int) {
	if !set.Contains(slot) {
		set.Insert(slot)
	}
}

// Origin returns the origin of the last run. ok is false before any origin is set.
func (s *Search) Origin() (id core.NodeID, ok bool) {
	return s.origin, s.hasOrigin
}

// Cost returns the recorded cost of id. ok is false when id was not reached.
func (s *Search) Cost(id core.NodeID) (int64, bool) {
	slot, ok := s.slotOf(id)
	if !ok || !s.reached.Contains(slot) {
		return 0, false
	}

	return s.cost[slot], true
}

// Via returns the predecessor of id on its best known path. Unreached nodes
// and the origin report themselves with ok == false.
func (s *Search) Via(id core.NodeID) (core.NodeID, bool) {
	slot, ok := s.slotOf(id)
	if !ok || s.via[slot].slot < 0 {
		return id, false
	}

	return s.via[slot].id, true
}

// Visited reports whether id has been expanded.
func (s *Search) Visited(id core.NodeID) bool {
	slot, ok := s.slotOf(id)

	return ok && s.visited.Contains(slot)
}

// Settled returns the number of nodes finalized by the last run.
func (s *Search) Settled() int {
	return s.settled
}

// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: implements Dijkstra's algorithm for a single origin and a
// single destination on a core.Graph with non-negative edge weights.
//
// Complexity:
//
//   - FrontierLinear: O(V) scan per settled node, O(V·(V+E)) worst case.
//   - FrontierHeap:   O((V + E) log V) with lazy decrease-key.
//   - Space: O(V) working set sized by the graph's slot capacity.
//
// Notes on implementation choices:
//
//   - Per-node search state (cost, predecessor, visited) lives in a Search,
//     never in the graph, so read-only queries do not mutate shared state.
//   - The search stops as soon as the destination leaves the open set.
//   - Dead edges (destination absent) are skipped during relaxation.

package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/sparsepath/core"
)

// ShortestPath computes the cheapest route from origin to dest in g.
//
// Returns:
//
//   - Result with Found == true, Path origin…dest and its Cost when reachable.
//   - Result with Found == true, empty Path and Cost 0 when origin == dest.
//   - Result with Found == false and empty Path when dest is unreachable.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. origin and dest must exist (ErrNodeNotFound).
//  3. With WithStrict(), no edge may be negative (ErrNegativeWeight).
func ShortestPath(g *core.Graph, origin, dest core.NodeID, opts ...Option) (Result, error) {
	return NewSearch(g, opts...).Run(origin, dest)
}

// Run resets the working set and searches from origin to dest.
// See ShortestPath for the result contract.
func (s *Search) Run(origin, dest core.NodeID) (Result, error) {
	// 1) Validate inputs.
	if s.g == nil {
		return Result{}, ErrNilGraph
	}
	if !s.g.HasNode(origin) {
		return Result{}, fmt.Errorf("%w: origin %d", ErrNodeNotFound, origin)
	}
	if !s.g.HasNode(dest) {
		return Result{}, fmt.Errorf("%w: destination %d", ErrNodeNotFound, dest)
	}
	if s.opts.Strict {
		for _, e := range s.g.Edges() {
			if e.Weight < 0 {
				return Result{}, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 2) Fresh working set; origin is the first closed node.
	s.Reset()
	if err := s.MakeOrigin(origin); err != nil {
		return Result{}, err
	}
	oSlot, _ := s.slotOf(origin)
	closed := entry{id: origin, slot: oSlot}
	s.settle(closed)

	// 3) Trivial route: nothing to walk.
	if origin == dest {
		return Result{Cost: 0, Found: true, Settled: s.settled}, nil
	}

	// 4) Main loop.
	found, err := s.process(closed, dest)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{Found: false, Cost: Unreachable, Settled: s.settled}, nil
	}

	// 5) Walk the predecessor chain back to the origin.
	return s.reconstruct(origin, dest)
}

// process relaxes the closed node, picks the cheapest open node as the next
// closed node, and repeats until dest is closed (true) or the open set runs
// dry (false).
func (s *Search) process(closed entry, dest core.NodeID) (bool, error) {
	for {
		if err := s.relax(closed); err != nil {
			return false, err
		}

		next, ok := s.front.next(s)
		if !ok {
			// Open set empty and nothing newly discovered: dest is unreachable.
			return false, nil
		}
		closed = next
		s.settle(closed)
		if closed.id == dest {
			return true, nil
		}
	}
}

// relax examines every outgoing edge of the closed node u. Undiscovered
// neighbours join the open set in edge order; a neighbour's cost and
// predecessor are replaced when it has no cost yet or the route through u is
// strictly cheaper. u is then marked visited.
func (s *Search) relax(u entry) error {
	edges, err := s.g.Neighbors(u.id)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u.id, err)
	}

	base := s.cost[u.slot]
	for _, e := range edges {
		slot, ok := s.slotOf(e.To)
		if !ok {
			continue // dead edge
		}
		if s.visited.Contains(slot) {
			continue // cost already final
		}
		v := entry{id: e.To, slot: slot}

		if !s.seen.Contains(slot) {
			s.seen.Insert(slot)
			s.front.add(v)
		}

		candidate := base + e.Weight
		if s.reached.Contains(slot) && candidate >= s.cost[slot] {
			continue
		}
		s.cost[slot] = candidate
		insert(s.reached, slot)
		s.via[slot] = u
		s.front.improve(v, candidate)
	}
	insert(s.visited, u.slot)

	return nil
}

// settle counts a finalized node and fires the OnSettle hook.
func (s *Search) settle(e entry) {
	s.settled++
	s.opts.OnSettle(e.id, s.cost[e.slot])
}

// reconstruct walks via links from dest to origin, summing the weight of
// every hop as it goes. The sum must match the cost recorded for dest.
func (s *Search) reconstruct(origin, dest core.NodeID) (Result, error) {
	dSlot, _ := s.slotOf(dest)
	path := []core.NodeID{dest}
	var total int64

	cur := entry{id: dest, slot: dSlot}
	for cur.id != origin {
		prev := s.via[cur.slot]
		if prev.slot < 0 || len(path) > s.n {
			return Result{}, fmt.Errorf("%w: broken chain at %d", ErrInconsistentPath, cur.id)
		}
		w, ok := s.g.EdgeValue(prev.id, cur.id)
		if !ok {
			return Result{}, fmt.Errorf("%w: edge %d→%d vanished", ErrInconsistentPath, prev.id, cur.id)
		}
		total += w
		path = append(path, prev.id)
		cur = prev
	}
	slices.Reverse(path)

	if total != s.cost[dSlot] {
		return Result{}, fmt.Errorf("%w: hops sum to %d, recorded %d", ErrInconsistentPath, total, s.cost[dSlot])
	}

	return Result{Path: path, Cost: total, Found: true, Settled: s.settled}, nil
}

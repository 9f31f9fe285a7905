// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// Edge weights are ignored. Dead edges (destination absent) are skipped.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/sparsepath/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node key with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	seen  *sparsesets.Set // slots already enqueued
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any OnVisit error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		seen:  sparsesets.New(g.Slots()),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	slot, _ := g.Slot(start)
	w.enqueue(start, slot, 0)

	return w.res, w.loop()
}

// Reachable reports whether to can be reached from from by following edges.
// Absent endpoints are never reachable.
func Reachable(g *core.Graph, from, to core.NodeID) bool {
	if g == nil || !g.HasNode(to) {
		return false
	}
	found := errors.New("found")
	_, err := BFS(g, from, WithOnVisit(func(id core.NodeID, _ int) error {
		if id == to {
			return found
		}
		return nil
	}))

	return errors.Is(err, found)
}

func (w *walker) enqueue(id core.NodeID, slot, d int) {
	w.seen.Insert(slot)
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// live neighbor in key order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, e := range edges {
		slot, err := w.graph.Slot(e.To)
		if err != nil {
			continue // dead edge
		}
		if w.seen.Contains(slot) || !w.opts.FilterEdge(e) {
			continue
		}
		w.res.Parent[e.To] = item.id
		w.enqueue(e.To, slot, nextDepth)
	}

	return nil
}

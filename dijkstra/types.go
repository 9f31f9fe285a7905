// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: errors, options and result types of the
// single-pair shortest path search.
//
// Options:
//
//	– WithFrontier(f):   FrontierLinear (default, ordered open set, O(V) scan)
//	                     or FrontierHeap (binary heap, lazy decrease-key).
//	– WithStrict():      fail with ErrNegativeWeight when any edge is negative.
//	– WithOnSettle(fn):  hook invoked each time a node's cost becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrNodeNotFound      if the origin or destination is not in the graph.
//	– ErrNegativeWeight    if WithStrict() is set and a negative weight exists.
//	– ErrInconsistentPath  if the predecessor chain disagrees with the recorded
//	                       cost (only under unsynchronized concurrent mutation).

package dijkstra

import (
	"errors"

	"github.com/katalvlaran/sparsepath/core"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the origin or destination does not exist.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// while running WithStrict().
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrInconsistentPath indicates that walking the predecessor chain did not
	// reproduce the destination's recorded cost.
	ErrInconsistentPath = errors.New("dijkstra: predecessor chain inconsistent with cost")
)

// Frontier selects the open-set implementation.
type Frontier int

const (
	// FrontierLinear keeps the open set as a slice in discovery order and
	// scans it for the minimum. Ties go to the earliest discovered node.
	FrontierLinear Frontier = iota

	// FrontierHeap keeps a binary min-heap with lazy decrease-key. Ties go to
	// the entry pushed first, which may pick a different path among several
	// of equal cost than FrontierLinear does. Costs are always identical.
	FrontierHeap
)

// String returns "linear" or "heap".
func (f Frontier) String() string {
	switch f {
	case FrontierLinear:
		return "linear"
	case FrontierHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// Options configures the search.
type Options struct {
	Frontier Frontier                         // open-set strategy
	Strict   bool                             // reject negative weights up front
	OnSettle func(id core.NodeID, cost int64) // called when a node's cost is final
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithFrontier chooses the open-set strategy. Panics on an unknown value.
func WithFrontier(f Frontier) Option {
	if f != FrontierLinear && f != FrontierHeap {
		panic("dijkstra: WithFrontier(unknown)")
	}
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithStrict makes the search scan all edges first and return
// ErrNegativeWeight if any weight is negative. Without it negative weights
// are used as given and the result is undefined.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithOnSettle registers a callback run whenever a node's shortest cost
// becomes final: the origin first, then each node taken from the open set,
// the destination included. A nil fn is ignored.
func WithOnSettle(fn func(id core.NodeID, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns the linear frontier, permissive weights and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Frontier: FrontierLinear,
		Strict:   false,
		OnSettle: func(core.NodeID, int64) {},
	}
}

// Unreachable is the historical cost reported when no route exists.
const Unreachable int64 = -1

// Result is the outcome of one origin→destination search.
//
//   - Path:    origin … destination inclusive; empty when not found and when
//     origin == destination.
//   - Cost:    total weight along Path; meaningful only when Found.
//   - Found:   whether the destination was reached (true for origin == destination).
//   - Settled: number of nodes whose cost was finalized during the run.
type Result struct {
	Path    []core.NodeID
	Cost    int64
	Found   bool
	Settled int
}

// CostOrUnreachable returns Cost, or Unreachable (-1) when !Found.
func (r Result) CostOrUnreachable() int64 {
	if !r.Found {
		return Unreachable
	}
	return r.Cost
}

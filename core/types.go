// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, node and Edge types,
// and provides thread-safe primitives for building and querying sparse
// directed weighted graphs keyed by unsigned integers.
//
// All core APIs use a single sync.RWMutex internally, so graphs may be
// read from many goroutines at once while mutations are serialized.
//
// This file declares NodeID, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound    - requested node does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
//	ErrAntiParallel    - edge A→B rejected because B→A already exists.
//	ErrInvalidWeight   - negative weight on a strict-weights graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAntiParallel indicates an edge A→B was rejected because the
	// destination already carries an edge B→A.
	ErrAntiParallel = errors.New("core: anti-parallel edge not allowed")

	// ErrInvalidWeight indicates a negative weight on a graph built WithStrictWeights.
	ErrInvalidWeight = errors.New("core: negative edge weight")
)

// NodeID is the caller-assigned key of a node. Keys need not be dense or
// start at zero.
type NodeID uint64

// Edge is a read-only snapshot of one directed weighted edge.
type Edge struct {
	// From is the source node.
	From NodeID

	// To is the destination node. It may name a node that does not exist
	// (a dead edge) until that node is added.
	To NodeID

	// Weight is the cost of traversing the edge.
	Weight int64
}

// node is the internal record of a graph node.
// edges maps destination → weight; last write wins.
// slot is a dense index, stable for the lifetime of the key.
type node struct {
	id    NodeID
	slot  int
	edges map[NodeID]int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithAntiParallelEdges permits A→B and B→A to coexist. Without it, AddEdge
// rejects A→B when B→A is already stored (ErrAntiParallel).
func WithAntiParallelEdges() GraphOption {
	return func(g *Graph) { g.allowAntiParallel = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithStrictWeights makes AddEdge and SetEdgeValue reject negative weights
// with ErrInvalidWeight. By default negative weights are stored as given.
func WithStrictWeights() GraphOption {
	return func(g *Graph) { g.strictWeights = true }
}

// Graph is the core in-memory graph data structure.
//
// The Graph is the sole owner of its nodes; callers only ever see NodeID
// keys and Edge values. mu protects every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowAntiParallel bool // allow A→B together with B→A
	allowLoops        bool // allow self-loops
	strictWeights     bool // reject negative weights

	// Storage
	nodes     map[NodeID]*node
	nextSlot  int // next dense slot handed to a new key
	edgeCount int // number of stored edges, dead edges included
}

// NewGraph creates an empty Graph with the given options.
// By default anti-parallel edges and loops are rejected and weights are not validated.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[NodeID]*node),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

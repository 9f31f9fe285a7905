// SPDX-License-Identifier: MIT
// Package: sparsepath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsepath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// NewRandomSparse builds a default-policy graph (anti-parallel suppression on,
// loops off) with RandomSparse(n, percent).
func NewRandomSparse(n, percent int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, opts, RandomSparse(n, percent))
}

// Sample returns the six-node demonstration network:
//
//	1→2 (1)  1→3 (3)  2→4 (1)  2→3 (1)  3→6 (4)  3→5 (7)  4→6 (5)
//
// The edge 3→1 is attempted too and rejected as anti-parallel to 1→3.
func Sample() *core.Graph {
	g, err := BuildGraph(nil, nil, SampleNetwork())
	if err != nil {
		// SampleNetwork only fails on a graph that forbids its dead edges.
		panic(err)
	}

	return g
}

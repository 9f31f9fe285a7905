// SPDX-License-Identifier: MIT
// Package: sparsepath/builder
//
// impl_random_sparse.go - RandomSparse(n, percent) and SampleNetwork().
//
// Canonical model:
//   - Nodes firstID..firstID+n-1 are added first, in ascending order.
//   - Ordered pairs (i,j) are tried in (i asc, j asc) order; i == j is skipped.
//   - A pair whose reverse edge j→i already exists is skipped without a draw.
//   - Otherwise one draw r ∈ [0,100) decides: keep the edge iff r < percent;
//     a kept edge then draws its weight from cfg.weightFn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ percent ≤ 100 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < percent < 100 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) trials.

package builder

import (
	"errors"

	"github.com/katalvlaran/sparsepath/core"
)

const (
	methodRandomSparse  = "RandomSparse"
	methodSampleNetwork = "SampleNetwork"
	minRandomSparseSize = 1
	percentMin          = 0
	percentMax          = 100
)

// RandomSparse returns a Constructor that samples a sparse directed graph over
// n nodes with edge probability percent/100 per admissible ordered pair.
func RandomSparse(n, percent int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseSize {
			return builderErrorf(methodRandomSparse, "n=%d < min=%d: %w", n, minRandomSparseSize, ErrTooFewNodes)
		}
		if percent < percentMin || percent > percentMax {
			return builderErrorf(methodRandomSparse, "percent=%d not in [%d,%d]: %w",
				percent, percentMin, percentMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && percent > percentMin && percent < percentMax {
			return builderErrorf(methodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddNode(cfg.nodeID(i))
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			u := cfg.nodeID(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				v := cfg.nodeID(j)
				if g.HasEdge(v, u) {
					continue
				}
				keep := percent == percentMax
				if rng != nil {
					keep = rng.Intn(percentMax) < percent
				}
				if !keep {
					continue
				}
				w := cfg.weightFn(rng)
				if err := g.AddEdge(u, v, w); err != nil {
					return builderErrorf(methodRandomSparse, "AddEdge(%d→%d, w=%d): %w", u, v, w, err)
				}
			}
		}

		return nil
	}
}

// sampleSteps replays the demonstration network in its historical order:
// each node is added right before its own edges, so some edges start out dead.
var sampleSteps = []struct {
	node  core.NodeID
	edges []core.Edge
}{
	{1, []core.Edge{{From: 1, To: 2, Weight: 1}, {From: 1, To: 3, Weight: 3}}},
	{2, []core.Edge{{From: 2, To: 4, Weight: 1}, {From: 2, To: 3, Weight: 1}}},
	{3, []core.Edge{{From: 3, To: 1, Weight: 1}, {From: 3, To: 6, Weight: 4}, {From: 3, To: 5, Weight: 7}}},
	{4, []core.Edge{{From: 4, To: 6, Weight: 5}}},
	{5, nil},
	{6, nil},
}

// SampleNetwork returns a Constructor for the six-node demonstration network.
// Edges rejected by the graph's policy (3→1 on a default graph) are skipped;
// any other failure is returned.
func SampleNetwork() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, step := range sampleSteps {
			g.AddNode(step.node)
			for _, e := range step.edges {
				err := g.AddEdge(e.From, e.To, e.Weight)
				if err == nil || errors.Is(err, core.ErrAntiParallel) {
					continue
				}
				return builderErrorf(methodSampleNetwork, "AddEdge(%d→%d): %v: %w", e.From, e.To, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

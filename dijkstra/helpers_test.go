package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsepath/core"
)

// sampleEdges is the six-node demo network. 3→1 is left out: with 1→3 present
// the default graph rejects it as anti-parallel.
var sampleEdges = []core.Edge{
	{From: 1, To: 2, Weight: 1},
	{From: 1, To: 3, Weight: 3},
	{From: 2, To: 4, Weight: 1},
	{From: 2, To: 3, Weight: 1},
	{From: 3, To: 6, Weight: 4},
	{From: 3, To: 5, Weight: 7},
	{From: 4, To: 6, Weight: 5},
}

// buildGraph adds nodes 1..n and then every edge, failing the test on error.
func buildGraph(t testing.TB, n int, edges []core.Edge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i := 1; i <= n; i++ {
		g.AddNode(core.NodeID(i))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func sampleGraph(t testing.TB) *core.Graph {
	t.Helper()

	return buildGraph(t, 6, sampleEdges)
}

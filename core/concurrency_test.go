// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsepath/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from one hub
// are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(0)
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make([]error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs[id] = g.AddEdge(0, core.NodeID(id+1), int64(id))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersAndWriters mixes node/edge mutation with reads to
// surface races under -race; the final counts must stay consistent.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithAntiParallelEdges())
	const rounds = 100
	for i := 0; i <= rounds; i++ {
		g.AddNode(core.NodeID(i))
	}

	var wg sync.WaitGroup
	wg.Add(3 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(core.NodeID(id), core.NodeID(id+1), 1)
		}(i)
		go func(id int) {
			defer wg.Done()
			_, _ = g.Neighbors(core.NodeID(id))
			_ = g.Edges()
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Clone()
			_ = g.Stats()
		}()
	}
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
	require.Equal(t, rounds+1, g.NodeCount())
}

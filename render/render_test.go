package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsepath/builder"
	"github.com/katalvlaran/sparsepath/core"
	"github.com/katalvlaran/sparsepath/render"
)

func TestFormatGraph_Sample(t *testing.T) {
	want := "Node #1 has 2 edges\n" +
		"-- to node: 2 (1)\n" +
		"-- to node: 3 (3)\n" +
		"Node #2 has 2 edges\n" +
		"-- to node: 3 (1)\n" +
		"-- to node: 4 (1)\n" +
		"Node #3 has 2 edges\n" +
		"-- to node: 5 (7)\n" +
		"-- to node: 6 (4)\n" +
		"Node #4 has 1 edge\n" +
		"-- to node: 6 (5)\n" +
		"Node #5 has 0 edges\n" +
		"Node #6 has 0 edges\n" +
		"TOTAL NODES: 6\tTOTAL EDGES: 7\n"

	if diff := cmp.Diff(want, render.FormatGraph(builder.Sample())); diff != "" {
		t.Fatalf("graph listing (-want +got):\n%s", diff)
	}
}

func TestFormatSummaryRouteCost(t *testing.T) {
	require.Equal(t, "Graph has 6 nodes and 7 edges\n", render.FormatSummary(builder.Sample()))
	require.Equal(t, "Shortest route has 4 nodes: 1 2 3 6\n", render.FormatRoute([]core.NodeID{1, 2, 3, 6}))
	require.Equal(t, "No route found\n", render.FormatRoute(nil))
	require.Equal(t, "Shortest route cost: 6\n", render.FormatCost(6))
	require.Empty(t, render.FormatCost(0))
	require.Empty(t, render.FormatCost(-1))
}

func TestAverage(t *testing.T) {
	var a render.Average
	_, ok := a.Mean()
	require.False(t, ok)
	require.Equal(t, "Average route cost: infinity\n", render.FormatAverage(a))

	for _, c := range []int64{1, 2, 2, 6} {
		a.Add(c)
	}
	mean, ok := a.Mean()
	require.True(t, ok)
	require.InDelta(t, 2.75, mean, 1e-9)
	require.Equal(t, "Average route cost: 2.75\nNodes in the average: 4\n", render.FormatAverage(a))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Summary(&buf, builder.Sample()))
	require.NoError(t, render.Route(&buf, []core.NodeID{1, 3}))
	require.NoError(t, render.Cost(&buf, -1))
	require.NoError(t, render.AverageCost(&buf, render.Average{Sum: 9, Count: 2}))
	require.Equal(t, "Graph has 6 nodes and 7 edges\n"+
		"Shortest route has 2 nodes: 1 3\n"+
		"Average route cost: 4.50\nNodes in the average: 2\n", buf.String())

	err := render.Graph(failingWriter{}, builder.Sample())
	require.ErrorContains(t, err, "disk full")
	require.NoError(t, render.Cost(failingWriter{}, 0), "nothing to write")
}

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsepath/builder"
	"github.com/katalvlaran/sparsepath/core"
)

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.NewRandomSparse(0, 10, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.NewRandomSparse(5, -1, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.NewRandomSparse(5, 101, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.NewRandomSparse(5, 50)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Extremes(t *testing.T) {
	// 0% needs no RNG and yields isolated nodes 1..n.
	g, err := builder.NewRandomSparse(4, 0)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{1, 2, 3, 4}, g.Nodes())
	require.Zero(t, g.EdgeCount())

	// 100% keeps exactly one direction per unordered pair: the lower key
	// is tried first, so every edge points upwards.
	g, err = builder.NewRandomSparse(5, 100, builder.WithWeightFn(builder.ConstantWeightFn(2)))
	require.NoError(t, err)
	require.Equal(t, 10, g.EdgeCount())
	for _, e := range g.Edges() {
		require.Less(t, e.From, e.To)
		require.Equal(t, int64(2), e.Weight)
	}
}

func TestRandomSparse_Invariants(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.NewRandomSparse(30, 20, builder.WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, 30, g.NodeCount())

		for _, e := range g.Edges() {
			require.NotEqual(t, e.From, e.To, "no self loops")
			require.False(t, g.HasEdge(e.To, e.From), "no anti-parallel pair %d↔%d", e.From, e.To)
			require.GreaterOrEqual(t, e.Weight, builder.DefaultMinWeight)
			require.LessOrEqual(t, e.Weight, builder.DefaultMaxWeight)
		}
		require.Zero(t, g.Stats().DeadEdgeCount)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.NewRandomSparse(40, 15, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.NewRandomSparse(40, 15, builder.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)

	if diff := cmp.Diff(a.Edges(), b.Edges()); diff != "" {
		t.Fatalf("same seed must give the same graph (-a +b):\n%s", diff)
	}
}

func TestRandomSparse_FirstIDAndGraphOptions(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithStrictWeights()},
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithFirstID(100)},
		builder.RandomSparse(3, 100),
	)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{100, 101, 102}, g.Nodes())
	require.True(t, g.StrictWeights())
}

func TestSample(t *testing.T) {
	g := builder.Sample()
	want := []core.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 3},
		{From: 2, To: 3, Weight: 1},
		{From: 2, To: 4, Weight: 1},
		{From: 3, To: 5, Weight: 7},
		{From: 3, To: 6, Weight: 4},
		{From: 4, To: 6, Weight: 5},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Fatalf("sample edges (-want +got):\n%s", diff)
	}
	require.Equal(t, 6, g.NodeCount())
	require.Equal(t, 7, g.EdgeCount())

	_, ok := g.EdgeValue(3, 1)
	require.False(t, ok, "3→1 is suppressed as anti-parallel")

	// With anti-parallel edges allowed the eighth edge survives.
	loose, err := builder.BuildGraph([]core.GraphOption{core.WithAntiParallelEdges()}, nil, builder.SampleNetwork())
	require.NoError(t, err)
	w, ok := loose.EdgeValue(3, 1)
	require.True(t, ok)
	require.Equal(t, int64(1), w)
}

func TestWeightFns(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		w := builder.DefaultWeightFn(r)
		require.GreaterOrEqual(t, w, int64(1))
		require.LessOrEqual(t, w, int64(10))
	}
	require.Equal(t, int64(1), builder.DefaultWeightFn(nil))
	require.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(r))
	require.Equal(t, int64(7), builder.ConstantWeightFn(7)(nil))

	require.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	require.Panics(t, func() { builder.UniformWeightFn(-1, 4) })
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
}

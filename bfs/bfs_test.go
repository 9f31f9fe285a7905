package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/sparsepath/bfs"
	"github.com/katalvlaran/sparsepath/builder"
	"github.com/katalvlaran/sparsepath/core"
	"github.com/katalvlaran/sparsepath/dijkstra"
)

// chain builds 1→2→…→n with unit weights.
func chain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		g.AddNode(core.NodeID(i))
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 1); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 1); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	g.AddNode(1)
	if _, err := bfs.BFS(g, 1, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SampleLayers checks visit order and depths on the demo network.
func TestBFS_SampleLayers(t *testing.T) {
	res, err := bfs.BFS(builder.Sample(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{1, 2, 3, 4, 5, 6}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[core.NodeID]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	path, err := res.PathTo(6)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{1, 3, 6}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(6) = %v; want %v", path, want)
	}
	if _, err := res.PathTo(42); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(42): want ErrNoPath, got %v", err)
	}
}

// TestBFS_MaxDepthAndFilter covers depth limiting and edge filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(t, 5)

	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(2) order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(g, 1, bfs.WithFilterEdge(func(e core.Edge) bool { return e.To != 4 }))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(4) || res.Reached(5) {
		t.Errorf("filtered edge 3→4 must cut off 4 and 5, got %v", res.Order)
	}
}

// TestBFS_DeadEdgesSkipped ensures edges to absent nodes are not followed.
func TestBFS_DeadEdgesSkipped(t *testing.T) {
	g := chain(t, 3)
	if err := g.AddEdge(1, 77, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.RemoveNode(2); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_HooksAndAbort checks hook order and error propagation.
func TestBFS_HooksAndAbort(t *testing.T) {
	g := chain(t, 4)
	var enq []core.NodeID
	stop := errors.New("stop")

	res, err := bfs.BFS(g, 1,
		bfs.WithOnEnqueue(func(id core.NodeID, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(id core.NodeID, _ int) error {
			if id == 3 {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want stop error, got %v", err)
	}
	if want := []core.NodeID{1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []core.NodeID{1, 2, 3}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueued = %v; want %v", enq, want)
	}
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(chain(t, 3), 1, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestReachable_AgreesWithDijkstra compares hop reachability with weighted
// search results over a seeded random corpus.
func TestReachable_AgreesWithDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.NewRandomSparse(15, 10, builder.WithSeed(seed))
		if err != nil {
			t.Fatal(err)
		}
		for o := core.NodeID(1); o <= 15; o++ {
			for d := core.NodeID(1); d <= 15; d++ {
				res, err := dijkstra.ShortestPath(g, o, d)
				if err != nil {
					t.Fatal(err)
				}
				if got := bfs.Reachable(g, o, d); got != res.Found {
					t.Fatalf("seed=%d %d→%d: Reachable=%v, dijkstra Found=%v", seed, o, d, got, res.Found)
				}
			}
		}
	}
	if bfs.Reachable(nil, 1, 2) || bfs.Reachable(core.NewGraph(), 1, 2) {
		t.Error("absent endpoints must not be reachable")
	}
}

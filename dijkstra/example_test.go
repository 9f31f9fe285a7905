// Package dijkstra_test provides runnable examples of the single-pair search.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/sparsepath/core"
	"github.com/katalvlaran/sparsepath/dijkstra"
)

// ExampleShortestPath finds the cheapest route across a small network where
// the direct edge 1→3 loses to the detour through 2.
func ExampleShortestPath() {
	g := core.NewGraph()
	for id := core.NodeID(1); id <= 6; id++ {
		g.AddNode(id)
	}
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 4, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 6, 4)
	_ = g.AddEdge(3, 5, 7)
	_ = g.AddEdge(4, 6, 5)

	res, err := dijkstra.ShortestPath(g, 1, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)

	res, _ = dijkstra.ShortestPath(g, 6, 1)
	fmt.Println(res.Found, res.CostOrUnreachable())
	// Output:
	// [1 2 3 6] 6
	// false -1
}

// ExampleSearch_Run reuses one Search for several queries and inspects the
// working set afterwards.
func ExampleSearch_Run() {
	g := core.NewGraph()
	for id := core.NodeID(1); id <= 4; id++ {
		g.AddNode(id)
	}
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 2)
	_ = g.AddEdge(1, 3, 5)
	_ = g.AddEdge(3, 4, 1)

	s := dijkstra.NewSearch(g, dijkstra.WithFrontier(dijkstra.FrontierHeap))
	for _, dest := range []core.NodeID{3, 4} {
		res, _ := s.Run(1, dest)
		fmt.Printf("1→%d: %v cost=%d\n", dest, res.Path, res.Cost)
	}
	via, _ := s.Via(3)
	fmt.Println("3 reached via", via)
	// Output:
	// 1→3: [1 2 3] cost=4
	// 1→4: [1 2 3 4] cost=5
	// 3 reached via 2
}

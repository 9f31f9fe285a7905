// SPDX-License-Identifier: MIT
//
// Package render formats graphs, routes and the average-cost sweep as plain
// text for the command-line demo.
//
// Every function has two forms: a Format* variant returning the string and a
// writer variant that writes it to an io.Writer. Output is deterministic:
// nodes and edges are printed in ascending key order.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsepath/core"
)

const (
	_fmtNode      = "Node #%d has %d %s\n"
	_fmtEdge      = "-- to node: %d (%d)\n"
	_fmtTotals    = "TOTAL NODES: %d\tTOTAL EDGES: %d\n"
	_fmtSummary   = "Graph has %d nodes and %d edges\n"
	_fmtRoute     = "Shortest route has %d nodes: %s\n"
	_fmtCost      = "Shortest route cost: %d\n"
	_fmtAverage   = "Average route cost: %.2f\n"
	_fmtAveraged  = "Nodes in the average: %d\n"
	_msgNoRoute   = "No route found\n"
	_msgNoAverage = "Average route cost: infinity\n"
)

// FormatGraph lists every node with its outgoing edges, followed by the
// node and edge totals. Dead edges are listed like any other edge.
func FormatGraph(g *core.Graph) string {
	var b strings.Builder
	for _, id := range g.Nodes() {
		edges, err := g.Neighbors(id)
		if err != nil {
			continue // removed concurrently
		}
		b.WriteString(fmt.Sprintf(_fmtNode, id, len(edges), plural(len(edges), "edge", "edges")))
		for _, e := range edges {
			b.WriteString(fmt.Sprintf(_fmtEdge, e.To, e.Weight))
		}
	}
	b.WriteString(fmt.Sprintf(_fmtTotals, g.NodeCount(), g.EdgeCount()))

	return b.String()
}

// FormatSummary is the one-line alternative to FormatGraph.
func FormatSummary(g *core.Graph) string {
	return fmt.Sprintf(_fmtSummary, g.NodeCount(), g.EdgeCount())
}

// FormatRoute prints the node keys of path separated by spaces, or
// "No route found" for an empty path.
func FormatRoute(path []core.NodeID) string {
	if len(path) == 0 {
		return _msgNoRoute
	}
	keys := make([]string, len(path))
	for i, id := range path {
		keys[i] = strconv.FormatUint(uint64(id), 10)
	}

	return fmt.Sprintf(_fmtRoute, len(path), strings.Join(keys, " "))
}

// FormatCost prints the route cost. Only positive costs are printed; the
// self route (0) and the unreachable sentinel (-1) produce an empty string.
func FormatCost(cost int64) string {
	if cost <= 0 {
		return ""
	}

	return fmt.Sprintf(_fmtCost, cost)
}

// Average accumulates route costs for the sweep summary.
type Average struct {
	Sum   int64
	Count int
}

// Add records one route cost.
func (a *Average) Add(cost int64) {
	a.Sum += cost
	a.Count++
}

// Mean returns Sum/Count. ok is false when nothing was added.
func (a Average) Mean() (mean float64, ok bool) {
	if a.Count == 0 {
		return 0, false
	}

	return float64(a.Sum) / float64(a.Count), true
}

// FormatAverage prints the mean and the number of routes averaged, or
// "infinity" when there were none.
func FormatAverage(a Average) string {
	mean, ok := a.Mean()
	if !ok {
		return _msgNoAverage
	}

	return fmt.Sprintf(_fmtAverage, mean) + fmt.Sprintf(_fmtAveraged, a.Count)
}

// Graph writes FormatGraph(g) to w.
func Graph(w io.Writer, g *core.Graph) error { return write(w, FormatGraph(g)) }

// Summary writes FormatSummary(g) to w.
func Summary(w io.Writer, g *core.Graph) error { return write(w, FormatSummary(g)) }

// Route writes FormatRoute(path) to w.
func Route(w io.Writer, path []core.NodeID) error { return write(w, FormatRoute(path)) }

// Cost writes FormatCost(cost) to w.
func Cost(w io.Writer, cost int64) error { return write(w, FormatCost(cost)) }

// AverageCost writes FormatAverage(a) to w.
func AverageCost(w io.Writer, a Average) error { return write(w, FormatAverage(a)) }

func write(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

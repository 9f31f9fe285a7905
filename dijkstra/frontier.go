// SPDX-License-Identifier: MIT

package dijkstra

import "container/heap"

// frontier is the open set: discovered nodes whose cost is not final yet.
type frontier interface {
	// add registers a newly discovered node.
	add(e entry)
	// improve records that e's tentative cost dropped to cost.
	improve(e entry, cost int64)
	// next removes and returns the open node with the lowest cost.
	// ok is false once the open set is exhausted.
	next(s *Search) (e entry, ok bool)
}

// linearFrontier keeps open nodes in discovery order. next scans the whole
// slice and takes the first node holding the minimum cost, then removes it
// without disturbing the order of the rest.
type linearFrontier struct {
	open []entry
}

func newLinearFrontier(capHint int) *linearFrontier {
	return &linearFrontier{open: make([]entry, 0, capHint)}
}

func (f *linearFrontier) add(e entry) { f.open = append(f.open, e) }

// improve is a no-op: next reads costs straight from the working set.
func (f *linearFrontier) improve(entry, int64) {}

func (f *linearFrontier) next(s *Search) (entry, bool) {
	if len(f.open) == 0 {
		return entry{}, false
	}
	best := 0
	for i := 1; i < len(f.open); i++ {
		if s.cost[f.open[i].slot] < s.cost[f.open[best].slot] {
			best = i
		}
	}
	e := f.open[best]
	f.open = append(f.open[:best], f.open[best+1:]...)

	return e, true
}

// heapFrontier is a min-heap with the "lazy decrease-key" approach: when the
// cost of an open node drops we push a new item. The outdated one stays in
// the heap and is skipped when popped (node already visited, or its cost no
// longer matches the working set).
type heapFrontier struct {
	pq  nodePQ
	seq uint64
}

func newHeapFrontier(capHint int) *heapFrontier {
	return &heapFrontier{pq: make(nodePQ, 0, capHint)}
}

// add is a no-op: the first improve of a discovered node pushes it.
func (f *heapFrontier) add(entry) {}

func (f *heapFrontier) improve(e entry, cost int64) {
	f.seq++
	heap.Push(&f.pq, &nodeItem{e: e, cost: cost, seq: f.seq})
}

func (f *heapFrontier) next(s *Search) (entry, bool) {
	for f.pq.Len() > 0 {
		item := heap.Pop(&f.pq).(*nodeItem)
		if s.visited.Contains(item.e.slot) {
			continue // stale: already expanded
		}
		if item.cost != s.cost[item.e.slot] {
			continue // stale: a cheaper item for this node exists
		}
		return item.e, true
	}

	return entry{}, false
}

// nodeItem is one heap entry. seq orders items of equal cost by push time.
type nodeItem struct {
	e    entry
	cost int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem, ordered by (cost, seq) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost first, then earlier push.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

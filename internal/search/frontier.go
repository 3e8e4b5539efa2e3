package search

import (
	"container/heap"

	"github.com/atharv3903/pathion/internal/fixed"
)

// frontierItem is one lazy heap entry. g is the distance component the
// entry was pushed with; a pop whose g no longer matches dist[node] is
// stale and gets skipped. seq breaks priority ties by insertion order so
// identical inputs always expand in the same order.
type frontierItem struct {
	node string
	prio fixed.Weight
	g    fixed.Weight
	seq  int
}

type itemHeap []*frontierItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) {
	*h = append(*h, x.(*frontierItem))
}

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// frontier is a min-priority queue over (node, priority) with lazy
// re-push instead of decrease-key. Duplicate entries per node are allowed;
// the search filters stale pops.
type frontier struct {
	h   itemHeap
	seq int
}

func newFrontier(capacity int) *frontier {
	f := &frontier{h: make(itemHeap, 0, capacity)}
	heap.Init(&f.h)
	return f
}

func (f *frontier) push(node string, prio, g fixed.Weight) {
	heap.Push(&f.h, &frontierItem{node: node, prio: prio, g: g, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() (*frontierItem, bool) {
	if f.h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&f.h).(*frontierItem), true
}

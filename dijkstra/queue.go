package dijkstra

import (
	"container/heap"
	"sort"
)

// nodeItem is a queued vertex. pos is the vertex position in input order and
// doubles as the tie-breaker; index is the heap slot, -1 once popped.
type nodeItem struct {
	pos   int
	dist  int64
	index int
}

// nodePQ is an indexed min-heap of *nodeItem ordered by (dist, pos). Unlike
// a lazy-deletion heap every vertex appears exactly once, so the queue
// contents shown in a step are exactly the vertices not yet extracted.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by input position for equal distances.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].pos < pq[j].pos
}

// Swap swaps two elements and keeps their index fields current.
func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) {
	item := x.(*nodeItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

// decrease lowers item's key and restores heap order.
func (pq *nodePQ) decrease(item *nodeItem, dist int64) {
	item.dist = dist
	heap.Fix(pq, item.index)
}

// ordered returns a copy of the queued items sorted in extraction order.
// The heap itself is left untouched.
func (pq nodePQ) ordered() []*nodeItem {
	items := append([]*nodeItem(nil), pq...)
	sort.Slice(items, func(i, j int) bool { return nodePQ(items).Less(i, j) })

	return items
}

// snapshot returns the queue contents in extraction order, with vertex
// positions mapped to IDs through ids.
func (pq nodePQ) snapshot(ids []int) []QueueEntry {
	items := pq.ordered()
	out := make([]QueueEntry, len(items))
	for i, it := range items {
		out[i] = QueueEntry{Vertex: ids[it.pos], Dist: it.dist}
	}

	return out
}

package frontier

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Heap is a Frontier backed by a binary min-heap keyed by (Dist, Node).
//
// Stale entries are never removed eagerly ("lazy decrease-key"): a better
// distance for a node is simply inserted again, so the heap may hold up to
// E entries for a search over E edges.
//
// Complexity:
//   - Insert:     O(log n)
//   - ExtractMin: O(log n)
type Heap[N constraints.Ordered] struct {
	pq entryPQ[N]
}

// NewHeap returns an empty Heap with room for capacity entries.
func NewHeap[N constraints.Ordered](capacity int) *Heap[N] {
	return &Heap[N]{pq: make(entryPQ[N], 0, capacity)}
}

// Insert pushes (dist, node) onto the heap.
func (h *Heap[N]) Insert(dist float64, node N) {
	heap.Push(&h.pq, Entry[N]{Dist: dist, Node: node})
}

// ExtractMin pops the smallest entry.
func (h *Heap[N]) ExtractMin() (Entry[N], bool) {
	if len(h.pq) == 0 {
		var zero Entry[N]
		return zero, false
	}

	return heap.Pop(&h.pq).(Entry[N]), true
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[N]) IsEmpty() bool { return len(h.pq) == 0 }

// Len returns the number of entries, stale ones included.
func (h *Heap[N]) Len() int { return len(h.pq) }

// Reset empties the heap.
func (h *Heap[N]) Reset() { h.pq = h.pq[:0] }

// entryPQ implements heap.Interface over Entry values.
type entryPQ[N constraints.Ordered] []Entry[N]

func (pq entryPQ[N]) Len() int           { return len(pq) }
func (pq entryPQ[N]) Less(i, j int) bool { return pq[i].Less(pq[j]) }
func (pq entryPQ[N]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an Entry[N].
func (pq *entryPQ[N]) Push(x interface{}) { *pq = append(*pq, x.(Entry[N])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *entryPQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

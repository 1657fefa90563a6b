package frontier

import "golang.org/x/exp/constraints"

// Array is a Frontier backed by an unordered slice. It trades a linear
// ExtractMin for a constant-time Insert and exists mainly as a baseline for
// the Heap.
//
// Removal uses the index found during the minimum scan; entries are never
// located by comparing float distances for equality.
//
// Complexity:
//   - Insert:     O(1) amortized
//   - ExtractMin: O(n)
type Array[N constraints.Ordered] struct {
	entries []Entry[N]
}

// NewArray returns an empty Array with room for capacity entries.
func NewArray[N constraints.Ordered](capacity int) *Array[N] {
	return &Array[N]{entries: make([]Entry[N], 0, capacity)}
}

// Insert appends (dist, node).
func (a *Array[N]) Insert(dist float64, node N) {
	a.entries = append(a.entries, Entry[N]{Dist: dist, Node: node})
}

// ExtractMin scans for the smallest entry and removes it by swapping the
// last element into its slot.
func (a *Array[N]) ExtractMin() (Entry[N], bool) {
	n := len(a.entries)
	if n == 0 {
		var zero Entry[N]
		return zero, false
	}

	// 1) Linear scan, remembering the index of the minimum.
	best := 0
	for i := 1; i < n; i++ {
		if a.entries[i].Less(a.entries[best]) {
			best = i
		}
	}
	out := a.entries[best]

	// 2) Remove by index. Order is irrelevant, so swap-with-last is enough.
	a.entries[best] = a.entries[n-1]
	a.entries = a.entries[:n-1]

	return out, true
}

// IsEmpty reports whether the array holds no entries.
func (a *Array[N]) IsEmpty() bool { return len(a.entries) == 0 }

// Len returns the number of entries, stale ones included.
func (a *Array[N]) Len() int { return len(a.entries) }

// Reset empties the array.
func (a *Array[N]) Reset() { a.entries = a.entries[:0] }

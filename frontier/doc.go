// Package frontier provides the node-selection structures used by the
// dijkstra package: a set of (distance, node) entries from which the entry
// with the smallest distance is repeatedly extracted.
//
// Two interchangeable implementations share the Frontier interface:
//
//   - Heap:  binary min-heap over container/heap. Insert and ExtractMin are O(log n).
//   - Array: unordered slice. Insert is O(1), ExtractMin is a linear scan, O(n).
//
// Both order entries by (Dist, Node), so for the same sequence of inserts they
// extract entries in exactly the same order. Swapping one for the other never
// changes a search result, only its running time.
//
// Neither implementation supports decrease-key. Callers insert a node again
// when its distance improves and discard stale entries on extraction.
//
// Kind names ("heap", "array") can be parsed with ParseKind and round-trip
// through YAML.
package frontier

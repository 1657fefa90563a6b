package frontier

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKind indicates a Kind value (or name) that has no implementation.
var ErrUnknownKind = errors.New("frontier: unknown kind")

// Entry is an immutable (distance, node) pair recorded at insertion time.
// A node may appear in a Frontier several times; only the entry matching the
// node's live distance is meaningful, the others are stale.
type Entry[N constraints.Ordered] struct {
	Dist float64 // tentative distance when the entry was inserted
	Node N       // node identifier
}

// Less orders entries by distance, then by node, giving a total order that
// makes extraction deterministic on ties.
func (e Entry[N]) Less(o Entry[N]) bool {
	if e.Dist != o.Dist {
		return e.Dist < o.Dist
	}

	return e.Node < o.Node
}

// Frontier is the set of discovered but not yet finalized nodes, from which
// the search draws the next node to settle.
//
// Implementations are not safe for concurrent use; a Frontier belongs to a
// single search.
type Frontier[N constraints.Ordered] interface {
	// Insert adds the entry (dist, node). Duplicates for a node are allowed.
	Insert(dist float64, node N)
	// ExtractMin removes and returns the smallest entry by (Dist, Node).
	// ok is false when the Frontier is empty.
	ExtractMin() (e Entry[N], ok bool)
	// IsEmpty reports whether no entries remain.
	IsEmpty() bool
	// Len returns the number of stored entries, stale ones included.
	Len() int
	// Reset drops every entry, keeping allocated capacity.
	Reset()
}

// Kind selects a Frontier implementation.
type Kind int

const (
	// KindHeap is a binary min-heap: Insert and ExtractMin in O(log n).
	KindHeap Kind = iota
	// KindArray is an unordered slice: Insert in O(1), ExtractMin in O(n).
	KindArray
)

const (
	kindHeapName  = "heap"
	kindArrayName = "array"
)

// String returns the lowercase name of k.
func (k Kind) String() string {
	switch k {
	case KindHeap:
		return kindHeapName
	case KindArray:
		return kindArrayName
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a name ("heap", "array", case-insensitive) to its Kind.
// The empty string selects KindHeap.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", kindHeapName:
		return KindHeap, nil
	case kindArrayName:
		return KindArray, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// MarshalYAML encodes k by name.
func (k Kind) MarshalYAML() (interface{}, error) {
	if k != KindHeap && k != KindArray {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return k.String(), nil
}

// UnmarshalYAML decodes a scalar kind name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("frontier: decode kind at line %d: %w", value.Line, err)
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// New returns an empty Frontier of the given kind.
func New[N constraints.Ordered](kind Kind) (Frontier[N], error) {
	switch kind {
	case KindHeap:
		return NewHeap[N](0), nil
	case KindArray:
		return NewArray[N](0), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

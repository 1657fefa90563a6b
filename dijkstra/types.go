// File: types.go
// Role: sentinel errors, functional options and the Result type.
//
// Options:
//
//	– Frontier:         node-selection structure (frontier.KindHeap or frontier.KindArray).
//	– MaxIterations:    optional cap on frontier extractions; 0 means no cap.
//	– ReprocessStale:   if true, stale frontier entries are relaxed again instead of skipped.
//	– SkipValidation:   if true, the O(E) weight pre-scan is not performed.
//	– Logger:           structured logger for debug traces (discarded by default).
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph is nil.
//	– ErrUnknownNode      if source or target is not known to the graph.
//	– ErrInvalidWeight    if a negative, NaN or infinite weight is found.
//	– ErrIterationLimit   if MaxIterations was reached before the target settled.
//	– ErrBadMaxIterations if MaxIterations < 0.

package dijkstra

import (
	"errors"
	"io"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/frontier"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil graph was passed to Find or Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownNode indicates that the source or target is neither a key of
	// the graph nor the neighbor of any key.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrInvalidWeight is core.ErrInvalidWeight, re-exported so callers need
	// not import core to match it with errors.Is.
	ErrInvalidWeight = core.ErrInvalidWeight

	// ErrIterationLimit indicates that the search stopped after MaxIterations
	// extractions without settling the target. The partial Result is returned
	// alongside this error.
	ErrIterationLimit = errors.New("dijkstra: iteration limit reached")

	// ErrBadMaxIterations indicates a negative MaxIterations.
	ErrBadMaxIterations = errors.New("dijkstra: MaxIterations must be non-negative")
)

// Options configures the behavior of the search.
type Options struct {
	Frontier       frontier.Kind // Node-selection structure
	MaxIterations  int           // Maximum number of extractions; 0 = unlimited
	ReprocessStale bool          // Relax stale entries instead of skipping them
	SkipValidation bool          // Skip the negative/NaN/Inf weight pre-scan
	Logger         *slog.Logger  // Debug traces; never nil after DefaultOptions
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithFrontier selects the frontier implementation. Results are identical
// for every kind; only performance differs.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithMaxIterations caps the number of frontier extractions. When the cap is
// reached before the target settles, Search returns ErrIterationLimit along
// with the partial Result. Zero disables the cap.
// Negative values panic with ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithReprocessStale disables the stale-entry skip: an extracted entry whose
// distance is worse than the node's current best is relaxed anyway. The
// outcome is unchanged (a stale relaxation can never win the strict
// improvement check); only the amount of work grows.
func WithReprocessStale() Option {
	return func(o *Options) {
		o.ReprocessStale = true
	}
}

// WithoutWeightValidation skips the upfront weight scan. Behavior on
// negative, NaN or infinite weights is then undefined.
func WithoutWeightValidation() Option {
	return func(o *Options) {
		o.SkipValidation = true
	}
}

// WithLogger routes debug traces to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//
//   - Frontier:       frontier.KindHeap.
//   - MaxIterations:  0 (no cap).
//   - ReprocessStale: false (stale entries are skipped).
//   - SkipValidation: false (weights are validated).
//   - Logger:         discards all output.
func DefaultOptions() Options {
	return Options{
		Frontier:       frontier.KindHeap,
		MaxIterations:  0,
		ReprocessStale: false,
		SkipValidation: false,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Result is the full outcome of a Search.
//
// Path and Cost are what Find returns. Dist and Prev are the distance and
// predecessor tables at the moment the search stopped: Dist holds every
// known node (+Inf if never reached), Prev holds an entry only for reached
// nodes other than the source.
type Result[N constraints.Ordered] struct {
	Path    []N     // source … target; [target] alone when the target was not reached
	Cost    float64 // Dist[target]; +Inf when unreachable
	Reached bool    // true iff the target was extracted from the frontier

	Dist map[N]float64 // best-known distance per node
	Prev map[N]N       // predecessor on the best-known path

	Extractions  int // entries removed from the frontier
	Relaxations  int // strict improvements applied
	StaleSkipped int // extracted entries discarded as stale
}

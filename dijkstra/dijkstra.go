// File: dijkstra.go
// Role: Dijkstra's point-to-point search on weighted directed graphs
// with non-negative edge weights.
//
// The search settles nodes in order of increasing distance from the source,
// drawing each next node from a frontier (see package frontier), and stops as
// soon as the target is extracted.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the heap frontier, O((V + E)·E) worst case with the array frontier.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor tables.
//   - O(E) worst-case frontier entries under “lazy decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect invalid weights and fail fast.
//   - We use a “lazy” decrease-key strategy: pushing duplicates and skipping stale entries.
//   - Relaxation only applies strict improvements; ties never move a predecessor.

package dijkstra

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/frontier"
)

// Find returns the least-cost path from source to target in g and its cost.
//
// Returns:
//
//   - path: nodes from source to target inclusive. If target is unreachable the
//     path is the single-node slice [target] and cost is +Inf; this is a normal
//     outcome, not an error.
//   - cost: total weight of path.
//   - err:  ErrNilGraph, ErrUnknownNode, ErrInvalidWeight or ErrIterationLimit.
//     On ErrIterationLimit the tentative path and cost found so far are returned.
//
// Find(g, x, x) returns ([x], 0, nil) for every known node x.
func Find[N constraints.Ordered](g core.Graph[N], source, target N, opts ...Option) ([]N, float64, error) {
	res, err := Search(g, source, target, opts...)
	if res == nil {
		return nil, math.Inf(1), err
	}

	return res.Path, res.Cost, err
}

// Search runs the same computation as Find and returns the full Result,
// including the distance/predecessor tables and work counters.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and target must be known nodes of g (ErrUnknownNode).
//  3. No weight may be negative, NaN or infinite (ErrInvalidWeight),
//     unless WithoutWeightValidation is set.
//  4. The configured frontier kind must exist (frontier.ErrUnknownKind).
//
// Each call owns its tables and frontier; concurrent calls on the same
// (unmodified) graph are safe.
func Search[N constraints.Ordered](g core.Graph[N], source, target N, opts ...Option) (*Result[N], error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Enumerate known nodes and check both endpoints.
	nodes := g.Nodes()
	dist := make(map[N]float64, len(nodes))
	for _, v := range nodes {
		dist[v] = math.Inf(1)
	}
	if _, ok := dist[source]; !ok {
		return nil, fmt.Errorf("%w: source %v", ErrUnknownNode, source)
	}
	if _, ok := dist[target]; !ok {
		return nil, fmt.Errorf("%w: target %v", ErrUnknownNode, target)
	}

	// 4) Pre-scan weights.
	if !cfg.SkipValidation {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}

	// 5) Allocate the frontier for this query.
	f, err := frontier.New[N](cfg.Frontier)
	if err != nil {
		return nil, err
	}

	r := &runner[N]{
		g:       g,
		options: cfg,
		source:  source,
		target:  target,
		dist:    dist,
		prev:    make(map[N]N),
		f:       f,
		log: cfg.Logger.With(
			slog.Any("source", source),
			slog.Any("target", target),
			slog.String("frontier", cfg.Frontier.String()),
		),
	}

	// 6) Seed and run.
	r.init(len(nodes))
	err = r.process()

	return r.result(), err
}

// runner holds the mutable state for a single search.
type runner[N constraints.Ordered] struct {
	g       core.Graph[N]        // Input graph; read-only.
	options Options              // Configuration.
	source  N                    // Start node.
	target  N                    // Node whose extraction ends the search.
	dist    map[N]float64        // DistanceTable: node → best-known distance.
	prev    map[N]N              // PredecessorTable: absent = none.
	f       frontier.Frontier[N] // Node selection.
	log     *slog.Logger

	reached      bool
	extractions  int
	relaxations  int
	staleSkipped int
}

// init sets dist[source] = 0 and seeds the frontier with (0, source).
// Every other node is already at +Inf.
func (r *runner[N]) init(nodeCount int) {
	r.dist[r.source] = 0
	r.f.Insert(0, r.source)

	r.log.Debug("search started", slog.Int("nodes", nodeCount), slog.Int("edges", r.g.EdgeCount()))
}

// process is the main loop. It stops when:
//
//   - the target is extracted (early exit, nothing else is relaxed),
//   - the frontier is empty (target unreachable),
//   - MaxIterations extractions have been made (ErrIterationLimit).
func (r *runner[N]) process() error {
	var e frontier.Entry[N]
	for !r.f.IsEmpty() {
		// 1) Enforce the external iteration cap before touching the frontier.
		if r.options.MaxIterations > 0 && r.extractions >= r.options.MaxIterations {
			r.log.Debug("iteration limit reached", slog.Int("extractions", r.extractions))
			return fmt.Errorf("%w: %d extractions", ErrIterationLimit, r.extractions)
		}

		// 2) Pop the smallest (distance, node).
		e, _ = r.f.ExtractMin()
		r.extractions++

		// 3) Skip entries superseded by a later, better relaxation.
		if !r.options.ReprocessStale && e.Dist > r.dist[e.Node] {
			r.staleSkipped++
			continue
		}

		// 4) Early exit once the target is settled.
		if e.Node == r.target {
			r.reached = true
			r.log.Debug("target settled",
				slog.Float64("cost", e.Dist),
				slog.Int("extractions", r.extractions))
			return nil
		}

		// 5) Relax outgoing edges.
		r.relax(e)
	}

	r.log.Debug("frontier exhausted", slog.Int("extractions", r.extractions))

	return nil
}

// relax tries every edge leaving e.Node. Neighbors are visited in sorted
// order so both frontier kinds see identical insert sequences.
//
// The candidate distance is computed from the extracted entry's distance,
// so a reprocessed stale entry yields candidates that can never pass the
// strict-improvement check.
func (r *runner[N]) relax(e frontier.Entry[N]) {
	var candidate float64
	for _, v := range r.g.Neighbors(e.Node) {
		candidate = e.Dist + r.g[e.Node][v]

		// Only strict improvements count; ties keep the existing predecessor.
		if candidate >= r.dist[v] {
			continue
		}

		// Distance and predecessor change together.
		r.dist[v] = candidate
		r.prev[v] = e.Node
		r.relaxations++

		r.f.Insert(candidate, v)
	}
}

// result snapshots the runner state. The tables are handed over, not copied;
// the runner is discarded afterwards.
func (r *runner[N]) result() *Result[N] {
	return &Result[N]{
		Path:         Reconstruct(r.prev, r.target),
		Cost:         r.dist[r.target],
		Reached:      r.reached,
		Dist:         r.dist,
		Prev:         r.prev,
		Extractions:  r.extractions,
		Relaxations:  r.relaxations,
		StaleSkipped: r.staleSkipped,
	}
}

// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// build.go — the parameterized builder and the three public entry points.
//
// Design contract (strict):
//   - One orchestrator: Build(dst, series, variant, opts...). The three
//     public constructors are thin wrappers selecting variant + sink mode.
//   - Node seeding and the unconditional path are laid down first, in
//     series order, before any pairwise work (insertion-order invariant).
//   - Every unordered pair (n1, n2), n1 < n2, is evaluated; emission is
//     always low→high and edge insertion is idempotent, so re-visiting the
//     consecutive pairs after seeding is harmless.
//   - Determinism: same series and variant ⇒ identical node and edge sets,
//     sequentially or under WithWorkers(k).
//   - Safety: never panic; sink errors propagate unmodified with method
//     context attached via %w.
package visibility

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jmrozanec/visgraph/core"
)

// pair is an accepted visibility relation, always low index first.
type pair struct {
	n1 int // earlier sample index
	n2 int // later sample index, strictly greater than n1
}

// VisibilityGraph returns the natural visibility graph of series: an
// undirected graph with one node per sample (carrying its value) where two
// samples are connected iff the straight line between them clears every
// intervening sample.
//
// Degenerate inputs are not errors: length 0 yields an empty graph,
// length 1 a single node. NaN samples flow through IEEE comparison
// semantics unchanged; no validation is performed.
// Complexity: O(n³) worst case, O(n²) result size.
func VisibilityGraph(series []float64, opts ...Option) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Build(g, series, Natural, opts...); err != nil {
		return nil, fmt.Errorf("VisibilityGraph: %w", err)
	}

	return g, nil
}

// HorizontalVisibilityGraph returns the horizontal visibility graph of
// series: an undirected graph where two samples are connected iff a flat
// line of sight at the height of the taller endpoint clears every
// intervening sample. Degenerate-input policy matches VisibilityGraph.
func HorizontalVisibilityGraph(series []float64, opts ...Option) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Build(g, series, Horizontal, opts...); err != nil {
		return nil, fmt.Errorf("HorizontalVisibilityGraph: %w", err)
	}

	return g, nil
}

// DirectedHorizontalVisibilityGraph returns the directed horizontal
// visibility graph of series. The visibility rule is identical to
// HorizontalVisibilityGraph; every accepted relation is stored as a single
// edge oriented from the earlier to the later index, regardless of which
// sample is larger. There is never a reverse edge.
func DirectedHorizontalVisibilityGraph(series []float64, opts ...Option) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))
	if err := Build(g, series, Horizontal, opts...); err != nil {
		return nil, fmt.Errorf("DirectedHorizontalVisibilityGraph: %w", err)
	}

	return g, nil
}

// Build constructs the visibility graph of series into dst using the given
// variant. It seeds one node per sample (in series order, carrying the
// sample value), seeds the unconditional path over consecutive indices,
// then evaluates all index pairs with the variant's predicate and emits
// accepted pairs low→high. Orientation is decided by dst alone.
//
// Errors from dst abort construction immediately and propagate unmodified;
// a mid-construction failure leaves dst in an unspecified partial state.
// Complexity: O(n²) pairs × O(n) interior scan worst case.
func Build(dst GraphWriter, series []float64, v Variant, opts ...Option) error {
	if dst == nil {
		return fmt.Errorf("Build: %w", ErrNilGraph)
	}
	if !v.valid() {
		return fmt.Errorf("Build: variant=%d: %w", uint8(v), ErrUnknownVariant)
	}

	cfg := newConfig(opts...)
	n := len(series)

	// Seed nodes in series order so insertion order equals index order.
	for i := 0; i < n; i++ {
		if err := dst.AddNode(i, series[i]); err != nil {
			return fmt.Errorf("Build: AddNode(%d): %w", i, err)
		}
	}

	// Seed the path: consecutive samples are always mutually visible,
	// independent of the predicate.
	for i := 1; i < n; i++ {
		if err := dst.AddEdge(i-1, i); err != nil {
			return fmt.Errorf("Build: AddEdge(%d→%d): %w", i-1, i, err)
		}
	}

	if cfg.workers > 1 {
		return scanParallel(dst, series, v, cfg.workers)
	}

	return scanSequential(dst, series, v)
}

// scanSequential evaluates all pairs n1 < n2 in ascending order and emits
// accepted pairs directly into the sink.
func scanSequential(dst GraphWriter, series []float64, v Variant) error {
	n := len(series)
	for n1 := 0; n1 < n; n1++ {
		for n2 := n1 + 1; n2 < n; n2++ {
			if !visible(series, v, n1, n2) {
				continue
			}
			if err := dst.AddEdge(n1, n2); err != nil {
				return fmt.Errorf("Build: AddEdge(%d→%d): %w", n1, n2, err)
			}
		}
	}

	return nil
}

// scanParallel shards the outer pair loop over k workers. Workers are
// read-only over the shared series and collect accepted pairs into
// per-worker buckets; after the group settles, a single pass inserts the
// edges, so the sink observes no concurrent mutation and the final edge
// set equals the sequential one. Rows are dealt round-robin (n1 ≡ w mod k)
// to balance the shrinking inner loop across workers.
func scanParallel(dst GraphWriter, series []float64, v Variant, workers int) error {
	n := len(series)
	buckets := make([][]pair, workers)

	var grp errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		grp.Go(func() error {
			var local []pair
			for n1 := w; n1 < n; n1 += workers {
				for n2 := n1 + 1; n2 < n; n2++ {
					if visible(series, v, n1, n2) {
						local = append(local, pair{n1: n1, n2: n2})
					}
				}
			}
			buckets[w] = local // exclusive slot per worker; no lock needed

			return nil
		})
	}
	// Workers are pure; Wait only synchronizes completion.
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("Build: %w", err)
	}

	// Single aggregation step: the sink sees strictly sequential inserts.
	for _, bucket := range buckets {
		for _, p := range bucket {
			if err := dst.AddEdge(p.n1, p.n2); err != nil {
				return fmt.Errorf("Build: AddEdge(%d→%d): %w", p.n1, p.n2, err)
			}
		}
	}

	return nil
}

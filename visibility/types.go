// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// types.go — variant tags, the GraphWriter sink contract, and functional
// options resolved into an immutable config.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     construction functions themselves never panic.
//   - No hidden globals; everything flows through config.
package visibility

// Variant selects the line-of-sight rule used by the pairwise scan.
type Variant uint8

const (
	// Natural tests the straight line connecting the two endpoint values;
	// an interior sample on or above that line obstructs.
	Natural Variant = iota

	// Horizontal tests a flat line at the height of the taller endpoint;
	// an interior sample reaching that height obstructs.
	Horizontal
)

// variantNames backs Variant.String; unknown tags fall back to a literal.
var variantNames = map[Variant]string{
	Natural:    "Natural",
	Horizontal: "Horizontal",
}

// String returns the canonical variant name for diagnostics.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}

	return "Variant(?)"
}

// valid reports whether v is a known variant tag.
func (v Variant) valid() bool {
	_, ok := variantNames[v]

	return ok
}

// GraphWriter is the sink contract a result graph must satisfy: node
// registration with a value attribute, and idempotent edge insertion
// between existing nodes. Directionality is a property of the writer
// (an undirected sink stores {u,v}; a directed sink stores u→v), never
// of the visibility predicate.
//
// Build emits nodes in series order and edges with u < v; any error the
// writer returns aborts construction and propagates unmodified.
type GraphWriter interface {
	AddNode(id int, value float64) error
	AddEdge(u, v int) error
}

// defaultWorkers keeps construction sequential unless asked otherwise.
const defaultWorkers = 1

// config aggregates all knobs used by Build.
// It is resolved once per call and passed by value (immutable to callers).
type config struct {
	// workers is the pairwise-scan fan-out; 1 means sequential.
	workers int
}

// Option customizes construction behavior.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithWorkers sets the pairwise-scan fan-out to k goroutines (k ≥ 1).
// Workers only read the shared series; accepted pairs are aggregated into
// the sink by a single goroutine, so the final edge set is identical to
// the sequential scan. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		// Fail fast: option constructors validate and panic on programmer error.
		panic("visibility: WithWorkers(k<1)")
	}
	return func(c *config) {
		c.workers = k
	}
}

// newConfig resolves deterministic defaults, then applies options in order
// (last-wins). Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{workers: defaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: policy getters and the Stats() snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.
package core

// GraphStats is a deterministic, read-only snapshot of a graph's mode flag
// and catalog sizes. Useful for quick admissions and test assertions.
type GraphStats struct {
	Directed  bool // orientation mode (policy, not a per-edge property)
	NodeCount int  // size of the node catalog
	EdgeCount int  // number of unique edges
}

// Directed reports the graph's orientation mode, fixed at construction.
// Complexity: O(1). Concurrency: read lock on g.mu.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Stats produces a snapshot of the mode flag and catalog sizes.
// Complexity: O(1). Concurrency: read lock on g.mu.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &GraphStats{
		Directed:  g.directed,
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
	}
}

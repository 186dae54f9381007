// Package visibility converts numeric time series into visibility graphs.
//
// 🚀 What is a visibility graph?
//
//	Render the series as a bar chart and treat it as a side view of a
//	landscape with a node on top of each bar. Two nodes are connected when
//	an observer on one bar can see the top of the other without an
//	intervening bar blocking the view. Periodic series convert into
//	regular graphs, random series into random graphs, and fractal series
//	into scale-free networks (Lacasa et al., PNAS 105(13), 2008).
//
// ✨ Key features:
//   - Natural variant: straight line-of-sight between the two samples;
//     an interior sample on or above the connecting line obstructs.
//   - Horizontal variant: flat line-of-sight at the height of the taller
//     endpoint (Luque et al., Phys. Rev. E 80, 2009).
//   - Directed horizontal variant: every edge oriented from the earlier
//     to the later sample (Lacasa et al., Eur. Phys. J. B 85, 2012).
//   - Consecutive samples are always connected; the path 0–1–…–(n−1) is
//     seeded unconditionally before the pairwise scan.
//   - Optional parallel pairwise scan via WithWorkers; the edge set is
//     identical to the sequential result.
//
// ⚙️ Usage:
//
//	import "github.com/jmrozanec/visgraph/visibility"
//
//	g, err := visibility.HorizontalVisibilityGraph(
//		[]float64{2, 1, 3, 2, 1, 3, 2, 1, 3, 2, 1, 3},
//	)
//	// g has 12 nodes and 21 edges
//
// Performance:
//
//   - Time:   O(n²) pair enumerations, each scanning up to O(n) interior
//     samples with short-circuit on the first obstruction → O(n³) worst case.
//   - Memory: O(n²) for the densest result graphs.
//
// Construction is deterministic: the same series always yields the same
// node and edge sets, sequentially or in parallel.
package visibility

// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// predicate.go — pure line-of-sight tests over the open interval between
// two sample indices.
//
// Contract:
//   - Pure functions: read-only over the series, no allocation, no state.
//   - Callers guarantee 0 ≤ n1 < n2 < len(series); an empty interior
//     (n2 == n1+1) is vacuously visible.
//   - Both tests short-circuit on the first obstructing sample.
//
// Complexity: O(n2-n1) worst case per call.
package visibility

// visible dispatches the line-of-sight test for the chosen variant.
// Unknown variants are rejected by Build before any scan starts, so the
// default arm is unreachable in practice.
func visible(series []float64, v Variant, n1, n2 int) bool {
	switch v {
	case Natural:
		return naturalVisible(series, n1, n2)
	case Horizontal:
		return horizontalVisible(series, n1, n2)
	default:
		return false
	}
}

// naturalVisible reports whether the straight line connecting
// (n1, series[n1]) and (n2, series[n2]) clears every interior sample.
//
// The line is parameterized as value(n) = slope*n + offset with
// slope = (t2-t1)/(n2-n1) and offset = t2 - slope*n2. An interior sample
// lying ON the line obstructs (t >= line, not t > line): a perfectly
// linear ramp therefore yields only the consecutive-pair edges.
func naturalVisible(series []float64, n1, n2 int) bool {
	t1, t2 := series[n1], series[n2]
	// n2 > n1 always holds here, so the division is safe.
	slope := (t2 - t1) / float64(n2-n1)
	offset := t2 - slope*float64(n2)

	for n := n1 + 1; n < n2; n++ {
		if series[n] >= slope*float64(n)+offset {
			return false
		}
	}

	return true
}

// horizontalVisible reports whether a flat line of sight at the height of
// the taller endpoint clears every interior sample. The test ignores the
// slope between the endpoints entirely, which makes it strictly more
// restrictive than the natural test for non-monotonic interiors.
func horizontalVisible(series []float64, n1, n2 int) bool {
	ceiling := series[n1]
	if series[n2] > ceiling {
		ceiling = series[n2]
	}

	for n := n1 + 1; n < n2; n++ {
		if series[n] >= ceiling {
			return false
		}
	}

	return true
}

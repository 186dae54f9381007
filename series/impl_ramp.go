// SPDX-License-Identifier: MIT
// Package: visgraph/series
//
// impl_ramp.go — trivial deterministic shapes: linear ramp and cyclic
// pattern repetition. No RNG, no options; pure functions of their inputs.
package series

// Ramp returns the strictly increasing series 0, 1, …, n−1.
// A ramp is the canonical visibility fixture: interior samples lie exactly
// on every connecting line, so the natural visibility graph of a ramp is
// the bare path. Returns nil when n < 1.
// Complexity: O(n).
func Ramp(n int) []float64 {
	if n < 1 {
		return nil
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(i)
	}

	return out
}

// Repeat returns the first n samples of the infinite cyclic repetition of
// pattern. Periodic inputs convert into regular visibility graphs, which
// makes Repeat the fixture of choice for horizontal-variant tests.
// Returns nil when n < 1 or pattern is empty.
// Complexity: O(n).
func Repeat(pattern []float64, n int) []float64 {
	if n < 1 || len(pattern) == 0 {
		return nil
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = pattern[i%len(pattern)]
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package: visgraph/series
//
// impl_walk.go — deterministic multiplicative random walk (discrete GBM).
//
// Purpose:
//   - Emit a reproducible stochastic level path; random inputs convert
//     into random visibility graphs, fractal-like ones into scale-free
//     networks, so a GBM walk is the standard "irregular" fixture.
//
// Contract:
//   - RandomWalk(n, seed, opts...) returns a slice of length n (or nil).
//   - Strict determinism: shared cfg.rng when supplied, else local seed.
//   - O(n) time, O(n) memory. No panics. No global state.
package series

import "math"

// RandomWalk returns a length-n multiplicative walk.
// Model (per sample, Δt = 1):
//
//	S_{i+1} = S_i * exp((μ − 0.5σ²) + σZ),  Z ~ N(0,1).
//
// out[0] is the starting level itself. Returns nil when n < 1.
func RandomWalk(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)

	// (μ − 0.5σ²) is constant across the walk; hoist it out of the loop.
	driftTerm := cfg.walkDrift - 0.5*cfg.walkVol*cfg.walkVol

	level := cfg.walkStart
	out[0] = level
	for i := 1; i < n; i++ {
		level *= math.Exp(driftTerm + cfg.walkVol*rng.NormFloat64())
		out[i] = level
	}

	return out
}

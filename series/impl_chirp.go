// SPDX-License-Identifier: MIT
// Package: visgraph/series
//
// impl_chirp.go — deterministic linear chirp generator.
//
// Purpose:
//   - Produce a 1-D linear chirp (frequency sweep from f0 to f1), a useful
//     non-periodic, non-monotonic visibility input.
//   - Optional linear trend and Gaussian noise.
//
// Contract:
//   - Chirp(n, seed, opts...) returns a slice of length n (or nil).
//   - O(n) time, O(n) memory. No panics. No global state.
package series

import "math"

// tau is 2π, precomputed for the phase accumulator.
const tau = 2.0 * math.Pi

// Chirp returns a length-n linear chirp: frequency sweeps from f0 to f1.
// Model:
//   - fi   = f0 + (f1 − f0) * i/(n−1)   (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi                (phase accumulator)
//   - yᵢ   = A * sin(θᵢ) + trend*i + noise
//
// Returns nil when n < 1.
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)

	// Phase accumulator starts at 0 for reproducibility.
	theta := 0.0

	var (
		t   float64 // normalized position in [0,1]
		fi  float64 // instantaneous frequency at sample i
		val float64 // sample value before store
	)
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		} else {
			t = 0
		}

		fi = cfg.chirpF0 + (cfg.chirpF1-cfg.chirpF0)*t
		theta += tau * fi

		val = cfg.amplitude * math.Sin(theta)
		val += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			val += cfg.sigma * rng.NormFloat64()
		}

		out[i] = val
	}

	return out
}

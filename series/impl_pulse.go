// SPDX-License-Identifier: MIT
// Package: visgraph/series
//
// impl_pulse.go — deterministic rectangular/triangular pulse generator.
//
// Purpose (single responsibility):
//   - Provide a reproducible 1-D pulse sequence for tests, demos, fixtures.
//   - Shape controls: rectangular (duty ∈ [0,1]) or triangular envelope.
//   - Optional linear trend and additive Gaussian noise, both deterministic.
//
// Contract:
//   - Pulse(n, seed, opts...) returns a slice of length n (or nil on
//     invalid input). Strict determinism per (n, seed, options).
//   - O(n) time, O(n) memory. No panics. No global state.
package series

import "math"

// Small named constants for the triangular envelope: 1 − |2*frac − 1|.
const (
	triDouble = 2.0
	triCenter = 1.0
)

// Pulse returns a length-n pulse train with optional trend and noise.
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2*frac − 1| (no trig).
//
// Additions:
//   - Linear trend: y += trend * i.
//   - Gaussian noise: y += sigma * N(0,1), deterministic per seed.
//
// Returns nil when n < 1.
func Pulse(n int, seed int64, opts ...Option) []float64 {
	// Early size check avoids allocation and RNG setup on invalid input.
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)

	var (
		frac float64 // phase fraction in [0,1)
		base float64 // waveform before trend/noise
	)
	for i := 0; i < n; i++ {
		// frac = (i*f0) mod 1 keeps rectangular and triangular unified
		// without trig overhead.
		frac = math.Mod(float64(i)*cfg.frequency, 1.0)

		if cfg.triangular {
			base = cfg.amplitude * (triCenter - math.Abs(triDouble*frac-triCenter))
		} else if frac < cfg.duty {
			base = cfg.amplitude
		} else {
			base = 0
		}

		base += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			base += cfg.sigma * rng.NormFloat64()
		}

		out[i] = base
	}

	return out
}

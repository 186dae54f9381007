// SPDX-License-Identifier: MIT
// Package: visgraph/series
//
// options.go — functional options for the series generators.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic.
//   - Determinism is explicit: seeding happens via the generators' seed
//     argument or a shared stream supplied with WithRand.
package series

import "math/rand"

// Option customizes a generator by mutating its config before synthesis.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithAmplitude sets the signal amplitude A (>0). Panics if A <= 0.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("series: WithAmplitude(A<=0)")
	}
	return func(c *config) {
		c.amplitude = a
	}
}

// WithFrequency sets the pulse base frequency f0 in cycles/sample (>0).
// Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("series: WithFrequency(f0<=0)")
	}
	return func(c *config) {
		c.frequency = f0
	}
}

// WithDuty sets the rectangular duty cycle in [0,1]. Panics outside that
// interval. Ignored for triangular pulses.
func WithDuty(duty float64) Option {
	if duty < 0 || duty > 1 {
		panic("series: WithDuty(duty outside [0,1])")
	}
	return func(c *config) {
		c.duty = duty
	}
}

// WithTriangular switches the pulse shape from rectangular to triangular.
func WithTriangular() Option {
	return func(c *config) {
		c.triangular = true
	}
}

// WithTrend sets the linear trend coefficient k; samples gain k*i.
// Any real value is accepted (including 0).
func WithTrend(k float64) Option {
	return func(c *config) {
		c.trend = k
	}
}

// WithNoise sets Gaussian noise sigma (≥0); 0 disables noise.
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("series: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.sigma = sigma
	}
}

// WithSweep sets the chirp start/end frequencies in cycles/sample.
// Panics if either bound is not positive.
func WithSweep(f0, f1 float64) Option {
	if f0 <= 0 || f1 <= 0 {
		panic("series: WithSweep(f<=0)")
	}
	return func(c *config) {
		c.chirpF0, c.chirpF1 = f0, f1
	}
}

// WithWalk sets the random-walk level start (>0), drift and volatility
// (≥0). Panics on a non-positive start or negative volatility.
func WithWalk(start, drift, vol float64) Option {
	if start <= 0 {
		panic("series: WithWalk(start<=0)")
	}
	if vol < 0 {
		panic("series: WithWalk(vol<0)")
	}
	return func(c *config) {
		c.walkStart, c.walkDrift, c.walkVol = start, drift, vol
	}
}

// WithRand provides an explicit shared RNG stream; it takes precedence
// over the generators' seed argument. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("series: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// SPDX-License-Identifier: MIT
// Package: visgraph/series
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - config is the single source of truth for all generator knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newConfig applies options in-order (later overrides earlier).
package series

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 1.0    // signal amplitude (>0)
	defaultFrequency  = 0.125  // pulse base frequency, cycles/sample; period ≈ 8
	defaultDuty       = 0.5    // rectangular duty cycle in [0,1]
	defaultTrend      = 0.0    // linear trend increment per sample
	defaultNoiseSigma = 0.0    // Gaussian noise stdev; 0 disables noise
	defaultChirpF0    = 0.02   // chirp start frequency (cycles/sample)
	defaultChirpF1    = 0.25   // chirp end frequency (cycles/sample)
	defaultWalkStart  = 100.0  // random-walk initial level (>0)
	defaultWalkDrift  = 0.0005 // random-walk per-sample drift μ
	defaultWalkVol    = 0.02   // random-walk per-sample volatility σ (≥0)
)

// config aggregates all knobs used by the generators.
// It is passed by VALUE to implementations (immutable to callers).
type config struct {
	amplitude  float64 // >0
	frequency  float64 // >0, pulse base frequency
	duty       float64 // [0,1], rectangular duty cycle
	triangular bool    // pulse shape: rectangular(false) or triangular(true)
	trend      float64 // any real; added as trend*i
	sigma      float64 // ≥0; Gaussian noise stdev
	chirpF0    float64 // >0, chirp start frequency
	chirpF1    float64 // >0, chirp end frequency
	walkStart  float64 // >0, random-walk initial level
	walkDrift  float64 // any real; random-walk drift
	walkVol    float64 // ≥0; random-walk volatility
	rng        *rand.Rand // shared RNG; nil means "seed a local one"
}

// newConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins). Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		amplitude: defaultAmplitude,
		frequency: defaultFrequency,
		duty:      defaultDuty,
		trend:     defaultTrend,
		sigma:     defaultNoiseSigma,
		chirpF0:   defaultChirpF0,
		chirpF1:   defaultChirpF1,
		walkStart: defaultWalkStart,
		walkDrift: defaultWalkDrift,
		walkVol:   defaultWalkVol,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

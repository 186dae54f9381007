// Package series provides deterministic one-dimensional sequence
// generators used as inputs to visibility-graph construction — in tests,
// benchmarks, examples, and quick experiments.
//
// Generators:
//   - Ramp(n)                — linear ramp 0,1,…,n−1
//   - Repeat(pattern, n)     — cyclic repetition of a fixed pattern
//   - Pulse(n, seed, ...)    — rectangular or triangular pulse train
//   - Chirp(n, seed, ...)    — linear frequency sweep
//   - RandomWalk(n, seed, ...) — multiplicative (GBM-style) walk
//
// Contract (shared by all generators):
//   - Strict determinism per (n, seed, options); no global state.
//   - Invalid sizes or parameters yield nil, never a panic.
//   - Option constructors (WithX...) panic on meaningless values;
//     generators themselves never panic.
//   - O(n) time, O(n) memory.
//
// Determinism policy: if WithRand supplies a shared *rand.Rand, that
// stream is used (composable across calls); otherwise a local source
// seeded by the explicit seed argument is created per call.
package series

// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// errors.go — sentinel errors for the visibility package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with fmt.Errorf("Method: ...: %w", err).
//   - Construction functions never panic; validation panics are confined
//     to option constructors (WithX...).
package visibility

import "errors"

// ErrNilGraph indicates Build was handed a nil destination sink.
// Usage: if errors.Is(err, ErrNilGraph) { /* supply a graph */ }.
var ErrNilGraph = errors.New("visibility: nil destination graph")

// ErrUnknownVariant indicates a Variant tag outside the declared set.
// Usage: if errors.Is(err, ErrUnknownVariant) { /* fix the tag */ }.
var ErrUnknownVariant = errors.New("visibility: unknown variant")

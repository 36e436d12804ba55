// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Validation priority: size, probability, value range, RNG presence,
//     and only then construction failures.

package builder

import "errors"

// ErrTooFewVertices indicates that the requested vertex count is negative.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that the edge density is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidRange indicates a value range whose lower bound exceeds its upper bound.
var ErrInvalidRange = errors.New("builder: invalid value range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the generated graph broke a structural
// guarantee (e.g. it is not a single connected component).
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with different seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

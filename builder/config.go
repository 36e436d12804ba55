// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • idFn       = DefaultIDFn        ("0","1","2",...)
//   • rng        = nil                (RandomGraph rejects it with ErrNeedRandSource)
//   • weightFn   = UniformIntWeightFn(DefaultMinWeight, DefaultMaxWeight) (integers 1..10)
//   • logger     = zerolog.Nop()
//
// AI-Hints:
//   • Set WithSeed for reproducible RandomGraph fixtures.
//   • Override WithIDScheme for human-readable labels in examples/golden tests.

package builder

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for every stochastic choice.
	rng *rand.Rand
	// Edge weight distribution, drawn from rng.
	weightFn WeightFn
	// Phase-level debug logging.
	logger zerolog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: defaultWeightFn(),
		logger:   zerolog.Nop(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Package builder provides helper functions and types for configuring
// edge-weight distributions in RandomGraph.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/pathlab/core"
)

// WeightFn produces an edge weight from the constructor's *rand.Rand.
// It must be deterministic for a given RNG seed and must not return a
// negative value: core.WithWeight rejects those.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns core.DefaultWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return core.DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0 or is not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn drawing integers uniformly from the
// inclusive range [lo, hi]. This is the RandomGraph default with
// [DefaultMinWeight, DefaultMaxWeight].
// Panics if lo < 0 or hi < lo. A nil rng yields core.DefaultWeight.
// Complexity: O(1) time, O(1) space.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultWeight
		}

		return float64(intInRange(rng, lo, hi))
	}
}

// UniformWeightFn returns a WeightFn sampling continuously in [lo, hi).
// Panics if lo < 0, hi < lo, or either bound is not finite.
// A nil rng yields core.DefaultWeight.
func UniformWeightFn(lo, hi float64) WeightFn {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require finite 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultWeight
		}
		if hi == lo {
			// Degenerate interval: constant
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// defaultWeightFn is the distribution RandomGraph uses without a weight option.
func defaultWeightFn() WeightFn {
	return UniformIntWeightFn(DefaultMinWeight, DefaultMaxWeight)
}

// WithWeightFn sets the edge-weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[lo,hi) via UniformWeightFn.
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithWeightRange sets integer weights drawn from [lo, hi] inclusive via
// UniformIntWeightFn. Panics if lo < 0 or lo > hi: negative weights are
// meaningless for shortest-path fixtures.
func WithWeightRange(lo, hi int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(lo, hi))
}

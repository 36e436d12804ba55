// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	// 1. Default configuration: decimal IDs.
	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	// 2. WithSymbolIDs switches to letters and keeps going past "Z".
	cfgSymbol := newBuilderConfig(WithSymbolIDs())
	if got := cfgSymbol.idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}
	if got := cfgSymbol.idFn(26); got != "AA" {
		t.Errorf("WithSymbolIDs: expected \"AA\", got %q", got)
	}

	// 3. WithSymbNumb uses the prefix.
	if got := newBuilderConfig(WithSymbNumb("v")).idFn(12); got != "v12" {
		t.Errorf("WithSymbNumb: expected \"v12\", got %q", got)
	}

	// 4. Last option wins.
	if got := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}
}

// TestRNGOptions verifies the rng field: nil by default, reproducible with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Fatal("default rng: expected nil")
	}

	a := newBuilderConfig(WithSeed(99)).rng
	b := newBuilderConfig(WithSeed(99)).rng
	for i := 0; i < 5; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("WithSeed: draw %d differs: %d vs %d", i, x, y)
		}
	}

	r := rand.New(rand.NewSource(1))
	if got := newBuilderConfig(WithRand(r)).rng; got != r {
		t.Error("WithRand: rng not attached")
	}
}

// TestWeightFnOption verifies the default weight distribution and overrides.
func TestWeightFnOption(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSeed(5))
	for i := 0; i < 200; i++ {
		w := cfg.weightFn(cfg.rng)
		if w < DefaultMinWeight || w > DefaultMaxWeight || w != float64(int(w)) {
			t.Fatalf("default weightFn drew %g, want an integer in [%d,%d]", w, DefaultMinWeight, DefaultMaxWeight)
		}
	}
	cfg = newBuilderConfig(WithSeed(5), WithWeightRange(5, 5))
	if w := cfg.weightFn(cfg.rng); w != 5 {
		t.Errorf("WithWeightRange(5,5) drew %g", w)
	}
	cfg = newBuilderConfig(WithWeightRange(2, 3), WithConstantWeight(0.5))
	if w := cfg.weightFn(nil); w != 0.5 {
		t.Errorf("last weight option should win, got %g", w)
	}
}

// TestIntInRange covers narrow, degenerate and full-width ranges.
func TestIntInRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(8))
	cases := []struct {
		name   string
		lo, hi int
	}{
		{"narrow", -3, 3},
		{"degenerate", 7, 7},
		{"full", math.MinInt, math.MaxInt},
		{"lower-half", math.MinInt, 0},
		{"upper-edge", math.MaxInt - 1, math.MaxInt},
		{"wider-than-int", -1, math.MaxInt},
	}
	for _, tc := range cases {
		for i := 0; i < 100; i++ {
			if v := intInRange(rng, tc.lo, tc.hi); v < tc.lo || v > tc.hi {
				t.Fatalf("%s: intInRange(%d,%d) = %d out of range", tc.name, tc.lo, tc.hi, v)
			}
		}
	}

	// Narrow ranges keep the Intn draw sequence.
	a := rand.New(rand.NewSource(1))
	b := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		if x, y := intInRange(a, 1, 10), 1+b.Intn(10); x != y {
			t.Fatalf("draw %d: intInRange = %d, Intn = %d", i, x, y)
		}
	}
}

// TestShufflePairs checks that the shuffle is a permutation.
func TestShufflePairs(t *testing.T) {
	t.Parallel()

	pairs := allPairs(6)
	if len(pairs) != 15 {
		t.Fatalf("allPairs(6) = %d pairs, want 15", len(pairs))
	}
	shufflePairsInPlace(pairs, rand.New(rand.NewSource(3)))
	seen := make(map[vertexPair]bool, len(pairs))
	for _, p := range pairs {
		if p.i >= p.j || seen[p] {
			t.Fatalf("bad or duplicate pair %+v", p)
		}
		seen[p] = true
	}
	if allPairs(1) != nil {
		t.Error("allPairs(1) should be nil")
	}
}

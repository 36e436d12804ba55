// Package builder - RNG helpers shared by stochastic constructors.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     concurrent RandomGraph calls.
package builder

import (
	"math"
	"math/bits"
	"math/rand"
)

// vertexPair is an unordered pair of vertex indices with i < j.
type vertexPair struct{ i, j int }

// intInRange draws uniformly from the inclusive range [lo, hi].
// Callers guarantee lo <= hi. Any such range is accepted, including
// [math.MinInt, math.MaxInt] whose width does not fit in an int.
//
// Complexity: O(1) expected.
func intInRange(rng *rand.Rand, lo, hi int) int {
	// Width minus one, exact in two's complement for every lo <= hi.
	span := uint64(hi) - uint64(lo)
	if span < uint64(math.MaxInt) {
		return lo + rng.Intn(int(span)+1)
	}

	// Wide range: mask-and-reject on raw 64-bit draws.
	shift := bits.LeadingZeros64(span)
	for {
		v := rng.Uint64() >> shift
		if v <= span {
			return int(uint64(lo) + v)
		}
	}
}

// shufflePairsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shufflePairsInPlace(a []vertexPair, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// allPairs enumerates every unordered pair {i,j}, i<j, of n vertices in
// lexicographic order.
//
// Complexity: O(n²) time and space.
func allPairs(n int) []vertexPair {
	if n < 2 {
		return nil
	}
	pairs := make([]vertexPair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, vertexPair{i: i, j: j})
		}
	}

	return pairs
}

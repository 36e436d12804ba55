// SPDX-License-Identifier: MIT

// Package builder generates graphs for the shortest-path engine.
//
// What
//
//   - RandomGraph(n, density, minValue, maxValue, opts...) — a connected
//     weighted graph: a random spanning tree first, then extra edges between
//     shuffled vertex pairs up to floor(n(n-1)/2 × density) edges.
//   - FromEdgeList / SampleGraph — deterministic fixtures for tests and demos.
//   - ID schemes (DefaultIDFn, ExcelColumnIDFn, SymbolNumberIDFn) and the
//     IDScheme name resolver used by configuration.
//
// Options
//
//	WithSeed / WithRand     — RNG (required by RandomGraph)
//	WithIDScheme & friends  — vertex labels
//	WithWeightFn(fn)        — edge weight distribution (WeightFn)
//	WithWeightRange(lo, hi) — integer weights in [lo,hi], default [1,10]
//	WithUniformWeight, WithConstantWeight — continuous / fixed weights
//	WithLogger              — zerolog logger for per-phase Debug records
//
// Errors
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrInvalidRange,
//	ErrNeedRandSource, ErrConstructFailed — always wrapped with the method
//	name; branch with errors.Is.
//
// Guarantees for every RandomGraph result
//
//   - single connected component (verified with bfs.Connected);
//   - at least n-1 edges for n ≥ 2, at most n(n-1)/2;
//   - no self-loops, at most one edge per unordered pair;
//   - identical output for identical seed and options.
//
// Example
//
//	g, err := builder.RandomGraph(10, 0.3, 1, 100, builder.WithSeed(42), builder.WithSymbolIDs())
package builder

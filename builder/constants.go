// Package builder defines shared constants used by graph builders.
package builder

// MethodRandomGraph is the canonical name used to prefix RandomGraph errors
// and log records.
const MethodRandomGraph = "RandomGraph"

// Default edge weight range for RandomGraph, inclusive.
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 10
)

// MinProbability is the lower bound for the edge density, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the edge density, inclusive.
const MaxProbability = 1.0

// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_random_graph.go - implementation of RandomGraph(n, density, minValue, maxValue).
//
// Model:
//   - n vertices labelled idFn(0..n-1), each with a value drawn uniformly from
//     [minValue, maxValue].
//   - Connectivity pass: grow a spanning tree by repeatedly linking a random
//     connected vertex to a random unconnected one (exactly n-1 edges).
//   - Density pass: maxEdges = floor(n(n-1)/2 × density); visit every unordered
//     pair in shuffled order and add the missing ones until EdgeCount ≥ maxEdges.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices); n ≤ 1 yields no edges.
//   - 0 ≤ density ≤ 1 (else ErrInvalidProbability; NaN included).
//   - minValue ≤ maxValue (else ErrInvalidRange); any such int range is drawable.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Result is one connected component (else ErrConstructFailed).
//   - Never panics at runtime.
//
// Complexity:
//   - Time:  O(n²) for pair enumeration and shuffle.
//   - Space: O(n²) for the pair list.
//
// Determinism:
//   - Every random choice flows through cfg.rng in a fixed order, so a fixed
//     seed reproduces the same graph, values and weights.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/core"
)

// RandomGraph generates a connected, undirected-by-meaning weighted graph.
// Edge weights are drawn from the configured WeightFn (WithWeightFn,
// WithWeightRange, ...; default integers in [DefaultMinWeight, DefaultMaxWeight]).
func RandomGraph(nodeCount int, edgeDensity float64, minValue, maxValue int, opts ...BuilderOption) (*core.Graph, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if nodeCount < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", MethodRandomGraph, nodeCount, ErrTooFewVertices)
	}
	if math.IsNaN(edgeDensity) || edgeDensity < MinProbability || edgeDensity > MaxProbability {
		return nil, fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
			MethodRandomGraph, edgeDensity, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	if minValue > maxValue {
		return nil, fmt.Errorf("%s: minValue=%d > maxValue=%d: %w",
			MethodRandomGraph, minValue, maxValue, ErrInvalidRange)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomGraph, ErrNeedRandSource)
	}

	g := core.NewGraph()
	ids := make([]string, nodeCount)

	// 2) Vertices in ascending index order with random values.
	for i := 0; i < nodeCount; i++ {
		ids[i] = cfg.idFn(i)
		if g.AddNode(ids[i], float64(intInRange(cfg.rng, minValue, maxValue))) == nil {
			return nil, fmt.Errorf("%s: AddNode(%q) rejected: %w", MethodRandomGraph, ids[i], ErrConstructFailed)
		}
	}
	if g.NodeCount() != nodeCount {
		// The ID scheme produced duplicates.
		return nil, fmt.Errorf("%s: id scheme produced %d distinct ids for %d vertices: %w",
			MethodRandomGraph, g.NodeCount(), nodeCount, ErrConstructFailed)
	}
	cfg.logger.Debug().Str("method", MethodRandomGraph).Int("nodes", nodeCount).Msg("vertices added")
	if nodeCount <= 1 {
		return g, nil
	}

	// 3) Connectivity pass: spanning tree over all vertices.
	if err := connectAll(g, ids, cfg); err != nil {
		return nil, err
	}
	cfg.logger.Debug().Str("method", MethodRandomGraph).Int("edges", g.EdgeCount()).Msg("spanning tree built")

	// 4) Density augmentation.
	maxEdges := int(float64(core.MaxEdges(nodeCount)) * edgeDensity)
	if err := augment(g, ids, maxEdges, cfg); err != nil {
		return nil, err
	}
	cfg.logger.Debug().
		Str("method", MethodRandomGraph).
		Int("edges", g.EdgeCount()).
		Int("maxEdges", maxEdges).
		Msg("density augmentation done")

	// 5) Post-condition: a single component.
	if !bfs.Connected(g) {
		return nil, fmt.Errorf("%s: generated graph is disconnected: %w", MethodRandomGraph, ErrConstructFailed)
	}

	return g, nil
}

// connectAll links every vertex into one tree: each round picks a random
// connected vertex and a random unconnected one and joins them.
func connectAll(g *core.Graph, ids []string, cfg builderConfig) error {
	unconnected := make([]int, len(ids))
	for i := range unconnected {
		unconnected[i] = i
	}
	seed := cfg.rng.Intn(len(unconnected))
	connected := []int{unconnected[seed]}
	unconnected = append(unconnected[:seed], unconnected[seed+1:]...)

	for len(unconnected) > 0 {
		a := connected[cfg.rng.Intn(len(connected))]
		k := cfg.rng.Intn(len(unconnected))
		b := unconnected[k]

		w := cfg.weightFn(cfg.rng)
		if g.AddEdge(ids[a], ids[b], core.WithWeight(w)) == nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g) rejected: %w",
				MethodRandomGraph, ids[a], ids[b], w, ErrConstructFailed)
		}
		connected = append(connected, b)
		unconnected = append(unconnected[:k], unconnected[k+1:]...)
	}

	return nil
}

// augment adds edges between shuffled unordered pairs until the graph holds
// at least maxEdges edges or every pair has been tried.
func augment(g *core.Graph, ids []string, maxEdges int, cfg builderConfig) error {
	if g.EdgeCount() >= maxEdges {
		return nil
	}
	pairs := allPairs(len(ids))
	shufflePairsInPlace(pairs, cfg.rng)

	for _, p := range pairs {
		if g.EdgeCount() >= maxEdges {
			break
		}
		u, v := ids[p.i], ids[p.j]
		if g.HasEdge(u, v) {
			continue
		}
		w := cfg.weightFn(cfg.rng)
		if g.AddEdge(u, v, core.WithWeight(w)) == nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g) rejected: %w",
				MethodRandomGraph, u, v, w, ErrConstructFailed)
		}
	}

	return nil
}

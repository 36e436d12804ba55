// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a Graph (Stats) for diagnostics and admission checks.
// Policy:
//   - No mutation, no hidden state.

package core

// GraphStats is an immutable-by-convention snapshot of graph sizes.
type GraphStats struct {
	// NodeCount is the number of nodes.
	NodeCount int

	// EdgeCount is the number of live edges.
	EdgeCount int

	// MaxEdges is the number of unordered node pairs, n(n-1)/2.
	MaxEdges int

	// Density is EdgeCount/MaxEdges, or 0 when MaxEdges is 0.
	Density float64

	// IsolatedCount is the number of nodes with no incident edge.
	IsolatedCount int
}

// Stats produces a GraphStats snapshot under a single read lock.
//
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.nodes)
	stats := GraphStats{
		NodeCount: n,
		EdgeCount: g.live,
		MaxEdges:  MaxEdges(n),
	}
	if stats.MaxEdges > 0 {
		stats.Density = float64(stats.EdgeCount) / float64(stats.MaxEdges)
	}
	for _, node := range g.nodes {
		if len(node.out)+len(node.in) == 0 {
			stats.IsolatedCount++
		}
	}

	return stats
}

// MaxEdges returns the number of unordered pairs among n nodes (0 for n < 2).
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

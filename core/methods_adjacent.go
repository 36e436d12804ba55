// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Per-node edge enumeration: Outgoing, Incoming, IncidentEdges, Neighbors, Degree.
// Determinism:
//   - Outgoing/Incoming follow insertion order.
//   - IncidentEdges is Outgoing followed by Incoming.
// AI-HINT (file):
//   - Shortest-path code must walk IncidentEdges: the store is directional, the graph is not.

package core

// Outgoing returns the edges whose From is id, in insertion order.
// An unknown id yields nil.
// Complexity: O(deg⁺(id)).
func (g *Graph) Outgoing(id string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := g.nodeLocked(id)
	if n == nil {
		return nil
	}

	return g.collectLocked(n.out, nil)
}

// Incoming returns the edges whose To is id, in insertion order.
// An unknown id yields nil.
// Complexity: O(deg⁻(id)).
func (g *Graph) Incoming(id string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := g.nodeLocked(id)
	if n == nil {
		return nil
	}

	return g.collectLocked(n.in, nil)
}

// IncidentEdges returns every edge touching id: its outgoing edges followed by
// its incoming edges. This is the undirected neighborhood used by traversals.
// An unknown id yields nil.
// Complexity: O(deg(id)).
func (g *Graph) IncidentEdges(id string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := g.nodeLocked(id)
	if n == nil {
		return nil
	}
	out := make([]*Edge, 0, len(n.out)+len(n.in))
	out = g.collectLocked(n.out, out)

	return g.collectLocked(n.in, out)
}

// Neighbors returns the opposite endpoint of each incident edge, in
// IncidentEdges order. Since pairs are unique, every neighbor appears once.
func (g *Graph) Neighbors(id string) []string {
	edges := g.IncidentEdges(id)
	if edges == nil {
		return nil
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.Other(id)
	}

	return ids
}

// Degree returns the number of edges touching id (0 for unknown ids).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := g.nodeLocked(id)
	if n == nil {
		return 0
	}

	return len(n.out) + len(n.in)
}

// collectLocked appends the edges at the given arena slots to dst.
// A nil slot means a corrupted list; it is skipped rather than followed.
func (g *Graph) collectLocked(slots []int, dst []*Edge) []*Edge {
	if dst == nil {
		dst = make([]*Edge, 0, len(slots))
	}
	for _, s := range slots {
		if s < 0 || s >= len(g.edges) || g.edges[s] == nil {
			continue
		}
		dst = append(dst, g.edges[s])
	}

	return dst
}

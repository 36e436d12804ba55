// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle (AddEdge/RemoveEdge) and edge queries (HasEdge/Edge/Edges/EdgeCount).
// Determinism:
//   - Edges() returns live edges in arena (insertion) order.
//   - Per-node lists keep insertion order across removals.
// Failure policy:
//   - Mutators are permissive: unknown IDs, duplicates and missing edges yield nil/false.
// AI-HINT (file):
//   - HasEdge and the duplicate check are undirected; RemoveEdge matches the stored direction.

package core

// AddEdge creates the edge from→to and returns it.
//
// The weight defaults to DefaultWeight and may be set with WithWeight.
// AddEdge returns nil, leaving g unchanged, when:
//   - from or to is not a node of g;
//   - from == to (self-loops are not stored);
//   - an edge already connects the unordered pair {from, to}.
//
// On success the edge is appended to the tail of from's outgoing list and
// to's incoming list.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) *Edge {
	if from == to {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	src, dst := g.nodeLocked(from), g.nodeLocked(to)
	if src == nil || dst == nil {
		return nil
	}
	key := newPairKey(from, to)
	if _, dup := g.pairs[key]; dup {
		return nil
	}

	e := &Edge{ID: EdgeID(from, to), From: from, To: to, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(e)
	}

	slot := len(g.edges)
	g.edges = append(g.edges, e)
	g.pairs[key] = slot
	g.live++
	src.out = append(src.out, slot)
	dst.in = append(dst.in, slot)

	return e
}

// RemoveEdge removes the edge stored as from→to and reports whether it did.
//
// It is a no-op returning false when either node is missing or no edge is
// stored in that direction. The edge is spliced out of from's outgoing list
// and to's incoming list; the remaining entries keep their order.
//
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(from, to string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, dst := g.nodeLocked(from), g.nodeLocked(to)
	if src == nil || dst == nil {
		return false
	}
	key := newPairKey(from, to)
	slot, ok := g.pairs[key]
	if !ok {
		return false
	}
	e := g.edges[slot]
	if e.From != from || e.To != to {
		return false
	}

	src.out = spliceSlot(src.out, slot)
	dst.in = spliceSlot(dst.in, slot)
	g.edges[slot] = nil
	delete(g.pairs, key)
	g.live--

	return true
}

// spliceSlot removes the first occurrence of slot from list, preserving order.
// A missing slot leaves list unchanged.
func spliceSlot(list []int, slot int) []int {
	for i, s := range list {
		if s == slot {
			copy(list[i:], list[i+1:])
			return list[:len(list)-1]
		}
	}

	return list
}

// HasEdge reports whether an edge connects a and b in either stored direction.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pairs[newPairKey(a, b)]

	return ok
}

// Edge returns the edge connecting a and b in either direction, or nil.
func (g *Graph) Edge(a, b string) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	slot, ok := g.pairs[newPairKey(a, b)]
	if !ok {
		return nil
	}

	return g.edges[slot]
}

// Edges returns every live edge exactly once, in insertion order.
// The slice is fresh; the edges are shared and must not be mutated.
// Complexity: O(len(arena)).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, g.live)
	for _, e := range g.edges {
		if e != nil {
			out = append(out, e)
		}
	}

	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live
}

// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle and node queries.
// Determinism:
//   - Nodes() and NodeIDs() return insertion order.
// AI-HINT (file):
//   - AddNode never overwrites: re-adding an ID returns the stored node unchanged.

package core

// AddNode inserts a node with the given id and value and returns it.
//
// If id is already present the stored node is returned untouched, so the
// original value wins. An empty id is rejected by returning nil.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, value float64) *Node {
	if id == "" {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if i, ok := g.index[id]; ok {
		return g.nodes[i]
	}
	n := &Node{ID: id, Value: value}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return n
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Node returns the node with the given id, or nil.
// The returned *Node is read-only by convention.
func (g *Graph) Node(id string) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeLocked(id)
}

// Nodes returns all nodes in insertion order.
// The slice is fresh; the nodes are shared and must not be mutated.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns the IDs of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// nodeLocked looks up id; the caller holds g.mu.
func (g *Graph) nodeLocked(id string) *Node {
	i, ok := g.index[id]
	if !ok {
		return nil
	}

	return g.nodes[i]
}

// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating, plain-data view of a Graph for rendering collaborators.
// Determinism:
//   - Nodes in insertion order, edges in insertion order.
// AI-HINT (file):
//   - Views share nothing with the Graph; renderers may annotate them freely.

package core

// NodeView is a plain copy of a Node.
type NodeView struct {
	ID     string
	Value  float64
	Degree int
}

// EdgeView is a plain copy of an Edge.
type EdgeView struct {
	ID     string
	From   string
	To     string
	Weight float64
}

// GraphView is a detached snapshot of nodes and edges.
type GraphView struct {
	Nodes []NodeView
	Edges []EdgeView
}

// View copies the graph into a GraphView under one read lock.
// Complexity: O(V + E).
func (g *Graph) View() GraphView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := GraphView{
		Nodes: make([]NodeView, len(g.nodes)),
		Edges: make([]EdgeView, 0, g.live),
	}
	for i, n := range g.nodes {
		v.Nodes[i] = NodeView{ID: n.ID, Value: n.Value, Degree: len(n.out) + len(n.in)}
	}
	for _, e := range g.edges {
		if e == nil {
			continue
		}
		v.Edges = append(v.Edges, EdgeView{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
	}

	return v
}

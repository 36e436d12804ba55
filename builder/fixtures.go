// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// fixtures.go - deterministic hand-written graphs.

package builder

import "github.com/katalvlaran/pathlab/core"

// NodeSpec describes one vertex of a fixture.
type NodeSpec struct {
	ID    string
	Value float64
}

// EdgeSpec describes one edge of a fixture. Weight is applied when it is
// non-zero or HasWeight is set; otherwise the edge gets core.DefaultWeight.
// Set HasWeight to state an explicit zero weight.
type EdgeSpec struct {
	From      string
	To        string
	Weight    float64
	HasWeight bool
}

// FromEdgeList builds a graph from explicit vertex and edge lists, in the
// given order. Specs the store rejects (unknown endpoints, self-loops,
// duplicate pairs) are skipped, mirroring core's permissive mutators.
func FromEdgeList(nodes []NodeSpec, edges []EdgeSpec) *core.Graph {
	g := core.NewGraph()
	for _, n := range nodes {
		g.AddNode(n.ID, n.Value)
	}
	for _, e := range edges {
		if e.Weight == 0 && !e.HasWeight {
			g.AddEdge(e.From, e.To)
			continue
		}
		g.AddEdge(e.From, e.To, core.WithWeight(e.Weight))
	}

	return g
}

// SampleGraph returns the five-vertex teaching graph
//
//	A —1— B —2— C —1— D,  A —10— D,  E isolated
//
// whose shortest distances from A are A:0, B:1, C:3, D:4, E:+Inf.
func SampleGraph() *core.Graph {
	return FromEdgeList(
		[]NodeSpec{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}},
		[]EdgeSpec{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
			{From: "C", To: "D", Weight: 1},
			{From: "A", To: "D", Weight: 10},
		},
	)
}

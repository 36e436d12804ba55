// SPDX-License-Identifier: MIT
// Package core_test verifies Stats, View and EdgeID.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathlab/core"
)

func TestEdgeID_OrderIndependent(t *testing.T) {
	assert.Equal(t, "A-B", core.EdgeID("A", "B"))
	assert.Equal(t, "A-B", core.EdgeID("B", "A"))
	assert.Equal(t, "n10-n2", core.EdgeID("n2", "n10"))
}

func TestGraph_Stats(t *testing.T) {
	g := newNodes(t, NodeA, NodeB, NodeC, NodeD)
	g.AddEdge(NodeA, NodeB)
	g.AddEdge(NodeB, NodeC)

	s := g.Stats()
	assert.Equal(t, 4, s.NodeCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.Equal(t, 6, s.MaxEdges)
	assert.InDelta(t, 2.0/6.0, s.Density, 1e-12)
	assert.Equal(t, 1, s.IsolatedCount)

	assert.Equal(t, core.GraphStats{}, core.NewGraph().Stats())
	assert.Zero(t, core.MaxEdges(1))
}

func TestGraph_ViewIsDetached(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(NodeA, 3)
	g.AddNode(NodeB, 4)
	g.AddEdge(NodeA, NodeB, core.WithWeight(Weight2))

	v := g.View()
	assert.Equal(t, []core.NodeView{
		{ID: NodeA, Value: 3, Degree: 1},
		{ID: NodeB, Value: 4, Degree: 1},
	}, v.Nodes)
	assert.Equal(t, []core.EdgeView{{ID: "A-B", From: NodeA, To: NodeB, Weight: Weight2}}, v.Edges)

	v.Nodes[0].Value = 100
	v.Edges[0].Weight = 100
	g.RemoveEdge(NodeA, NodeB)

	assert.Equal(t, 3.0, g.Node(NodeA).Value)
	assert.Len(t, v.Edges, 1, "view keeps its own copy after graph mutation")
}

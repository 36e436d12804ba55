// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"
	NodeX = "X"
)

// Common weights used across core tests.
const (
	Weight1  = 1.0
	Weight2  = 2.0
	Weight10 = 10.0
)

// newNodes returns a graph holding the given node IDs, each with value 0.
func newNodes(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NotNil(t, g.AddNode(id, 0), "AddNode(%s)", id)
	}

	return g
}

// edgeIDs maps edges to their IDs, preserving order.
func edgeIDs(edges []*core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}

// requireListsConsistent checks that every edge appears exactly once in its
// source's outgoing list and its target's incoming list, and nowhere else.
func requireListsConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	seenOut := make(map[string]int)
	seenIn := make(map[string]int)
	for _, id := range g.NodeIDs() {
		for _, e := range g.Outgoing(id) {
			require.Equal(t, id, e.From, "outgoing edge %s listed under %s", e.ID, id)
			seenOut[e.ID]++
		}
		for _, e := range g.Incoming(id) {
			require.Equal(t, id, e.To, "incoming edge %s listed under %s", e.ID, id)
			seenIn[e.ID]++
		}
	}
	all := g.Edges()
	require.Len(t, seenOut, len(all))
	require.Len(t, seenIn, len(all))
	for _, e := range all {
		require.Equal(t, 1, seenOut[e.ID], "edge %s outgoing count", e.ID)
		require.Equal(t, 1, seenIn[e.ID], "edge %s incoming count", e.ID)
		require.NotEqual(t, e.From, e.To, "self-loop %s", e.ID)
	}
}

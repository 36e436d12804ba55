// SPDX-License-Identifier: MIT
package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/pathlab/core"
)

// benchPath builds a path graph v0—v1—…—v(n-1).
func benchPath(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode("v"+strconv.Itoa(i), float64(i))
	}
	for i := 1; i < n; i++ {
		g.AddEdge("v"+strconv.Itoa(i-1), "v"+strconv.Itoa(i))
	}

	return g
}

// BenchmarkAddEdge measures edge insertion on a growing path.
func BenchmarkAddEdge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = benchPath(1000)
	}
}

// BenchmarkEdges measures full-edge enumeration.
func BenchmarkEdges(b *testing.B) {
	g := benchPath(5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}

// BenchmarkIncidentEdges measures per-node neighborhood enumeration.
func BenchmarkIncidentEdges(b *testing.B) {
	g := benchPath(5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.IncidentEdges("v2500")
	}
}

// SPDX-License-Identifier: MIT
// Package core_test checks that concurrent readers and a writer do not race.

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathlab/core"
)

const (
	NReaders = 16
	NRounds  = 200
)

// TestGraph_ConcurrentReaders runs View/Edges/IncidentEdges readers against a
// writer. Run with -race; assertions happen after the goroutines finish.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < NRounds+1; i++ {
		g.AddNode(fmt.Sprintf("v%d", i), float64(i))
	}

	var wg sync.WaitGroup
	wg.Add(NReaders + 1)
	go func() {
		defer wg.Done()
		for i := 0; i < NRounds; i++ {
			g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
		}
	}()
	for r := 0; r < NReaders; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				_ = g.View()
				_ = g.Edges()
				_ = g.IncidentEdges("v0")
				_ = g.Stats()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, NRounds, g.EdgeCount())
}

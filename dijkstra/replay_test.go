package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/dijkstra"
)

func TestCursor(t *testing.T) {
	res, err := dijkstra.Run(builder.SampleGraph(), "A")
	require.NoError(t, err)

	c := dijkstra.NewCursor(res.Steps)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Prev())

	var visitedOrder []string
	for {
		step, ok := c.Current()
		require.True(t, ok)
		if step.CurrentNodeID != "" {
			visitedOrder = append(visitedOrder, step.CurrentNodeID)
		}
		if !c.Next() {
			break
		}
	}
	assert.Equal(t, res.Order, visitedOrder)
	assert.True(t, c.Done())

	assert.True(t, c.Prev())
	assert.Equal(t, 3, c.Index())
	assert.True(t, c.Seek(1))
	step, _ := c.Current()
	assert.Equal(t, "A", step.CurrentNodeID)
	assert.False(t, c.Seek(5))
	assert.Equal(t, 1, c.Index())
	c.Reset()
	assert.Equal(t, 0, c.Index())
}

func TestCursor_Empty(t *testing.T) {
	c := dijkstra.NewCursor(nil)
	_, ok := c.Current()
	assert.False(t, ok)
	assert.False(t, c.Next())
	assert.True(t, c.Done())
	assert.False(t, c.Seek(0))
}

package gridpath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/gridpath"
)

func TestShortestPath_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		grid     [][]float64
		wantCost float64
		wantPath []gridpath.Coord
	}{
		{
			name:     "two-by-two",
			grid:     [][]float64{{1, 3}, {2, 1}},
			wantCost: 4,
			wantPath: []gridpath.Coord{{0, 0}, {1, 0}, {1, 1}},
		},
		{
			name:     "single-cell",
			grid:     [][]float64{{5}},
			wantCost: 5,
			wantPath: []gridpath.Coord{{0, 0}},
		},
		{
			name:     "single-row",
			grid:     [][]float64{{1, 2, 3}},
			wantCost: 6,
			wantPath: []gridpath.Coord{{0, 0}, {0, 1}, {0, 2}},
		},
		{
			name:     "single-column",
			grid:     [][]float64{{4}, {0}, {2}},
			wantCost: 6,
			wantPath: []gridpath.Coord{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			name:     "tie-prefers-above",
			grid:     [][]float64{{1, 1}, {1, 1}},
			wantCost: 3,
			wantPath: []gridpath.Coord{{0, 0}, {0, 1}, {1, 1}},
		},
		{
			name:     "classic-three-by-three",
			grid:     [][]float64{{1, 3, 1}, {1, 5, 1}, {4, 2, 1}},
			wantCost: 7,
			wantPath: []gridpath.Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := gridpath.ShortestPath(tc.grid)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCost, res.Cost)
			assert.Equal(t, tc.wantPath, res.Path)

			cost, err := gridpath.ShortestCost(tc.grid)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCost, cost)
		})
	}
}

func TestShortestPath_Tables(t *testing.T) {
	res, err := gridpath.ShortestPath([][]float64{{1, 3}, {2, 1}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {3, 4}}, res.Table)
	assert.Equal(t, [][]gridpath.Move{
		{gridpath.MoveStart, gridpath.MoveFromLeft},
		{gridpath.MoveFromAbove, gridpath.MoveFromLeft},
	}, res.Moves)
	assert.Equal(t, "left", res.Moves[1][1].String())
	assert.Equal(t, "above", res.Moves[1][0].String())
}

func TestShortestPath_Errors(t *testing.T) {
	for name, grid := range map[string][][]float64{
		"nil":        nil,
		"no-rows":    {},
		"empty-row":  {{}},
		"empty-rows": {{}, {}},
	} {
		_, err := gridpath.ShortestPath(grid)
		assert.ErrorIs(t, err, gridpath.ErrEmptyGrid, name)
		_, err = gridpath.ShortestCost(grid)
		assert.ErrorIs(t, err, gridpath.ErrEmptyGrid, name)
	}

	_, err := gridpath.ShortestPath([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, gridpath.ErrNonRectangular)
	_, err = gridpath.ShortestCost([][]float64{{1}, {2, 3}})
	assert.ErrorIs(t, err, gridpath.ErrNonRectangular)
}

// TestShortestPath_PathProperties checks shape, monotone moves and that the
// path sums to the reported cost on random grids.
func TestShortestPath_PathProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 50; iter++ {
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
		grid := make([][]float64, rows)
		for r := range grid {
			grid[r] = make([]float64, cols)
			for c := range grid[r] {
				grid[r][c] = float64(rng.Intn(10))
			}
		}

		res, err := gridpath.ShortestPath(grid)
		require.NoError(t, err)
		require.Len(t, res.Path, rows+cols-1)
		assert.Equal(t, gridpath.Coord{}, res.Path[0])
		assert.Equal(t, gridpath.Coord{Row: rows - 1, Col: cols - 1}, res.Path[len(res.Path)-1])

		sum := grid[0][0]
		for i := 1; i < len(res.Path); i++ {
			dr := res.Path[i].Row - res.Path[i-1].Row
			dc := res.Path[i].Col - res.Path[i-1].Col
			require.Equal(t, 1, dr+dc, "each move is one step right or down")
			require.True(t, dr >= 0 && dc >= 0)
			sum += grid[res.Path[i].Row][res.Path[i].Col]
		}
		assert.Equal(t, res.Cost, sum)

		cost, err := gridpath.ShortestCost(grid)
		require.NoError(t, err)
		assert.Equal(t, res.Cost, cost)
	}
}

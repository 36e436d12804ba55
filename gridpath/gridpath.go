package gridpath

// Grid shortest path — right/down moves only
//
// Algorithm Outline (Full-Table):
//  1. Let R = rows, C = cols. Allocate R×C tables T (cost) and M (moves).
//  2. T[0][0] = g[0][0]; the start cell is counted exactly once.
//  3. First row:    T[0][c] = T[0][c-1] + g[0][c]   (from left)
//     First column: T[r][0] = T[r-1][0] + g[r][0]   (from above)
//  4. Elsewhere:    T[r][c] = g[r][c] + min(T[r-1][c], T[r][c-1]);
//     ties prefer "from above".
//  5. cost = T[R-1][C-1]; walk M back from the bottom-right cell to (0,0).
//
// Complexity:
//
//	Time   = O(R·C)
//	Memory = O(R·C) (ShortestPath) or O(C) (ShortestCost)
//
// Errors:
//   - ErrEmptyGrid       — zero rows or zero columns.
//   - ErrNonRectangular  — rows of differing lengths.

// ShortestPath solves the grid and returns the cost, the path and both DP tables.
//
// Example:
//
//	res, err := ShortestPath([][]float64{{1, 3}, {2, 1}})
//	// res.Cost == 4, res.Path == [(0,0) (1,0) (1,1)]
func ShortestPath(grid [][]float64) (*Result, error) {
	rows, cols, err := validate(grid)
	if err != nil {
		return nil, err
	}

	// Prepare DP storage
	table := make([][]float64, rows)
	moves := make([][]Move, rows)
	for r := range table {
		table[r] = make([]float64, cols)
		moves[r] = make([]Move, cols)
	}

	// Fill DP
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := grid[r][c]
			switch {
			case r == 0 && c == 0:
				table[r][c], moves[r][c] = cell, MoveStart
			case r == 0:
				table[r][c], moves[r][c] = table[r][c-1]+cell, MoveFromLeft
			case c == 0:
				table[r][c], moves[r][c] = table[r-1][c]+cell, MoveFromAbove
			case table[r-1][c] <= table[r][c-1]:
				table[r][c], moves[r][c] = table[r-1][c]+cell, MoveFromAbove
			default:
				table[r][c], moves[r][c] = table[r][c-1]+cell, MoveFromLeft
			}
		}
	}

	return &Result{
		Cost:  table[rows-1][cols-1],
		Path:  backtrack(moves, rows, cols),
		Table: table,
		Moves: moves,
	}, nil
}

// ShortestCost returns only the cheapest total, keeping a single rolling row.
func ShortestCost(grid [][]float64) (float64, error) {
	_, cols, err := validate(grid)
	if err != nil {
		return 0, err
	}

	row := make([]float64, cols)
	for r, line := range grid {
		for c, cell := range line {
			switch {
			case r == 0 && c == 0:
				row[c] = cell
			case r == 0:
				row[c] = row[c-1] + cell
			case c == 0:
				row[c] += cell
			default:
				// row[c] still holds the value from above
				row[c] = cell + min(row[c], row[c-1])
			}
		}
	}

	return row[cols-1], nil
}

// validate checks shape and returns the dimensions.
func validate(grid [][]float64) (rows, cols int, err error) {
	rows = len(grid)
	if rows == 0 || len(grid[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	cols = len(grid[0])
	for _, line := range grid[1:] {
		if len(line) != cols {
			return 0, 0, ErrNonRectangular
		}
	}

	return rows, cols, nil
}

// backtrack follows the move table from the bottom-right cell to (0,0) and
// returns the cells in travel order.
func backtrack(moves [][]Move, rows, cols int) []Coord {
	path := make([]Coord, 0, rows+cols-1)
	r, c := rows-1, cols-1
	for done := false; !done; {
		path = append(path, Coord{Row: r, Col: c})
		switch moves[r][c] {
		case MoveFromAbove:
			r--
		case MoveFromLeft:
			c--
		default:
			done = true
		}
	}
	// reverse path in-place
	for l, h := 0, len(path)-1; l < h; l, h = l+1, h-1 {
		path[l], path[h] = path[h], path[l]
	}

	return path
}

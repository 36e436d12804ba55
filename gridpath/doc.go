// Package gridpath finds the cheapest route through a rectangular grid of
// cell costs, moving only right or down from the top-left cell to the
// bottom-right cell.
//
// Every visited cell's cost is added to the total, the start cell exactly
// once. ShortestPath also returns the cumulative cost table and the move
// table so a renderer can show how the dynamic program filled in; when two
// predecessors tie, the route comes from above.
//
// ShortestCost computes the total alone in O(cols) memory.
package gridpath

// Package pathlab is an in-memory playground for watching shortest-path
// algorithms work, one step at a time.
//
// 🚀 What is pathlab?
//
//	A small, dependency-light engine that brings together:
//		• Graph store: nodes with values, weighted edges, O(1) removal by pair
//		• Random graph generator: always connected, density-controlled, seedable
//		• Traversal: BFS and connectivity checks
//		• Shortest paths: Dijkstra with a replayable Step history
//		• Grid paths: right/down dynamic programming with full DP tables
//
// Under the hood, everything is organized in subpackages:
//
//	core/     — Graph, Node, Edge; arena-backed edge storage, views for renderers
//	builder/  — RandomGraph, ID schemes, fixtures
//	bfs/      — breadth-first search, Connected
//	dijkstra/ — Run, Step, ReconstructPath, Cursor
//	gridpath/ — ShortestPath, ShortestCost
//	cmd/pathlab — CLI printing JSON documents for rendering
//
// Quick ASCII example:
//
//	A ─1─ B ─2─ C ─1─ D      E
//	└──────── 10 ─────┘
//
//	res, _ := dijkstra.Run(builder.SampleGraph(), "A", dijkstra.WithTarget("D"))
//	// res.Path == [A B C D], res.Cost == 4, len(res.Steps) == 5
package pathlab

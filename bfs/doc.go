// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Result holds Order (visit sequence), Depth and Parent.
//   - OnVisit hook (may abort with an error) and MaxDepth limit.
//   - Connected(g) checks that a graph forms a single component.
//
// Edges are followed in both directions: core stores edges directionally but
// the graphs built by package builder are undirected by meaning.
//
// Determinism
//
//	Neighbors are enqueued in core.Graph.Neighbors order (outgoing edges, then
//	incoming edges, each in insertion order), so the visit sequence is
//	reproducible for a fixed insertion history.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or hook error
//	}
//	path, _ := res.PathTo("D")
package bfs

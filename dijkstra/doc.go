// Package dijkstra provides a step-recording implementation of Dijkstra's
// shortest-path algorithm for teaching and visualization.
//
// Overview:
//
//   - Run(g, source, opts...) computes the minimum-cost distance from source to
//     every vertex, treating each stored edge as traversable both ways.
//   - Besides the final Distances/Previous maps, Run records a Step after
//     every finalization: which vertex was just finalized, which one comes
//     next, and deep copies of the distance/predecessor state and the
//     visited/unvisited partition. A renderer can replay them with Cursor.
//   - ReconstructPath (and Result.PathTo) turns a predecessor map into an
//     ordered path and its cost.
//
// State machine:
//
//	initial snapshot ──► select min unvisited ──► finalize + relax ──► snapshot
//	                          ▲                                          │
//	                          └──────────────────────────────────────────┘
//	                     (stops when no unvisited vertex has a finite distance)
//
// Determinism:
//
//   - Ties among equal minima resolve by TieBreakInsertion (default, graph
//     insertion order) or TieBreakNaturalID (natural ordering of IDs).
//   - Identical graph + options ⇒ identical Steps.
//
// Invariants of every Result:
//
//   - Distances[source] == 0; unreachable vertices hold +Inf (Infinity).
//   - Distances along Order never decrease.
//   - For every v with Previous[v] = u: Distances[v] == Distances[u] + w(u,v).
//   - Steps never alias one another nor the runner's live state.
//
// Complexity:
//
//   - Time:  O(V² + E) plus O(V) per Step snapshot.
//   - Space: O(V) working state, O(V²) for the Step history (use WithoutSteps
//     to drop it).
//
// Example:
//
//	res, err := dijkstra.Run(g, "A", dijkstra.WithTarget("D"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost)
//	for c := dijkstra.NewCursor(res.Steps); ; {
//	    step, _ := c.Current()
//	    render(step)
//	    if !c.Next() {
//	        break
//	    }
//	}
package dijkstra

// Package core provides the Graph Store: an in-memory graph of string-keyed
// nodes and weighted edges with insertion-ordered per-node edge lists.
//
// Storage model:
//
//   - Edges live in an arena ([]*Edge). Removing an edge clears its slot.
//   - Each Node keeps two ordered lists of arena indices:
//     out (edges where the node is From) and in (edges where it is To).
//   - An index keyed by the unordered endpoint pair guarantees that one pair
//     owns at most one edge, whichever direction it was stored in.
//
// The store is directional, the graph it models is not: HasEdge, the
// duplicate check in AddEdge and IncidentEdges all ignore direction, while
// Outgoing/Incoming and RemoveEdge honor the stored From→To.
//
// Failure policy:
//
// The store never returns errors. Unknown node IDs, duplicate pairs,
// self-loops and removals of missing edges are absorbed and reported as
// nil/false. Algorithms built on top (package dijkstra) validate their own
// preconditions strictly.
//
// Core methods:
//
//	AddNode(id, value) *Node                 // O(1), idempotent, never overwrites
//	AddEdge(from, to, opts...) *Edge         // O(1), nil on missing/dup/loop
//	RemoveEdge(from, to) bool                // O(deg)
//	HasEdge(a, b) bool                       // O(1), either direction
//	Edges() []*Edge                          // O(E), each edge once, insertion order
//	IncidentEdges(id) []*Edge                // O(deg), outgoing then incoming
//	View() GraphView                         // O(V+E), detached copy
//
// Edge IDs are order-independent: EdgeID("B","A") == "A-B".
//
// Concurrency: every method takes the Graph's RWMutex, so concurrent readers
// are safe. Algorithms assume the graph is not mutated while they run.
package core

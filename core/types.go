// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph, EdgeOption and the NewGraph constructor.
// Storage model:
//   - Edges live in an append-only arena (edges []*Edge); a removed edge leaves a nil slot.
//   - Each Node keeps two ordered lists of arena indices: out (Node is From) and in (Node is To).
//   - pairs maps the unordered endpoint pair to the arena slot, so one pair owns at most one edge.
// Concurrency:
//   - mu guards every field of Graph. Readers take RLock, mutators take Lock.

package core

import (
	"strings"
	"sync"
)

// DefaultWeight is the weight given to an edge when AddEdge receives no WithWeight option.
const DefaultWeight float64 = 1

// edgeIDSeparator joins the two sorted endpoint IDs into an Edge.ID.
const edgeIDSeparator = "-"

// Node is a vertex of the Graph.
//
// Value is a display payload (it is never used as a traversal cost by the engine).
// out and in hold arena indices of the edges leaving and entering this node,
// in insertion order.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string

	// Value is the numeric payload shown next to the node.
	Value float64

	out []int
	in  []int
}

// Edge connects From to To with a non-negative Weight.
//
// Storage is directional (the edge sits in From's outgoing list and To's
// incoming list) while identity is not: ID is the same for (A,B) and (B,A).
type Edge struct {
	// ID is EdgeID(From, To).
	ID string

	// From is the source node ID.
	From string

	// To is the target node ID.
	To string

	// Weight is the traversal cost of the edge.
	Weight float64
}

// Other returns the endpoint of e opposite to id.
// If id is not an endpoint of e, Other returns "".
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}

	return ""
}

// EdgeOption configures an edge while it is being added.
type EdgeOption func(*Edge)

// WithWeight sets the edge weight. Negative weights are a programmer error and panic.
func WithWeight(w float64) EdgeOption {
	if w < 0 {
		panic("core: WithWeight(w<0)")
	}

	return func(e *Edge) { e.Weight = w }
}

// pairKey is the order-independent identity of an endpoint pair.
type pairKey struct {
	lo, hi string
}

// newPairKey sorts a and b so that newPairKey(a,b) == newPairKey(b,a).
func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// EdgeID returns the deterministic, order-independent identifier of the edge
// between a and b: the two IDs sorted ascending and joined with "-".
//
//	EdgeID("B", "A") == EdgeID("A", "B") == "A-B"
func EdgeID(a, b string) string {
	k := newPairKey(a, b)
	var sb strings.Builder
	sb.Grow(len(k.lo) + len(edgeIDSeparator) + len(k.hi))
	sb.WriteString(k.lo)
	sb.WriteString(edgeIDSeparator)
	sb.WriteString(k.hi)

	return sb.String()
}

// Graph owns every Node and Edge it contains.
//
// Nodes and edges reference each other only through IDs and arena indices,
// which are valid for the lifetime of the Graph. The zero value is not usable;
// call NewGraph.
type Graph struct {
	mu sync.RWMutex

	nodes []*Node        // insertion order
	index map[string]int // node ID → position in nodes

	edges []*Edge         // arena; nil marks a removed edge
	pairs map[pairKey]int // unordered pair → arena slot
	live  int             // number of non-nil arena slots
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		pairs: make(map[pairKey]int),
	}
}

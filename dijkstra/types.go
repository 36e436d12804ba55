// Package dijkstra defines core types and configuration options for the
// step-recording Dijkstra engine.
//
// Options:
//
//	– WithTarget(id):      also reconstruct the path source→id into the Result.
//	– WithTieBreak(rule):  choose among equal minimum distances deterministically.
//	– WithLogger(l):       zerolog logger; selection/relaxation at Debug level.
//	– WithoutSteps():      skip Step snapshots (distances and predecessors only).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrSourceNotFound  if the source vertex does not exist in the graph.
//	– ErrTargetNotFound  if WithTarget names a vertex absent from the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
package dijkstra

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrSourceNotFound indicates that the source vertex does not exist in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that the requested target vertex does not exist.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Infinity marks unreached vertices in every distance map.
var Infinity = math.Inf(1)

// TieBreak selects which vertex wins when several unvisited vertices share
// the minimum tentative distance.
type TieBreak int

const (
	// TieBreakInsertion picks the vertex inserted into the graph first.
	TieBreakInsertion TieBreak = iota

	// TieBreakNaturalID picks the vertex whose ID sorts first in natural
	// order ("v2" before "v10").
	TieBreakNaturalID
)

// String returns the configuration name of the rule.
func (t TieBreak) String() string {
	switch t {
	case TieBreakInsertion:
		return "insertion"
	case TieBreakNaturalID:
		return "natural"
	default:
		return "unknown"
	}
}

// ParseTieBreak maps a configuration name back to its rule.
func ParseTieBreak(s string) (TieBreak, bool) {
	switch s {
	case "", "insertion":
		return TieBreakInsertion, true
	case "natural":
		return TieBreakNaturalID, true
	default:
		return TieBreakInsertion, false
	}
}

// Step is an immutable snapshot taken after each finalization.
//
// CurrentNodeID   – vertex just finalized ("" for the initial snapshot).
// CurrentShortest – vertex that will be finalized next ("" once the frontier is exhausted).
// Distances       – tentative distances, Infinity for unreached vertices.
// Previous        – predecessor per vertex, "" for none.
// Visited         – finalized vertices, in graph insertion order.
// Unvisited       – the remaining vertices, in graph insertion order.
//
// Every container is freshly allocated; later steps never alias earlier ones.
type Step struct {
	CurrentNodeID   string
	CurrentShortest string
	Distances       map[string]float64
	Previous        map[string]string
	Visited         []string
	Unvisited       []string
}

// Result gathers the outcome of one Run.
//
// Order is the finalization sequence; distances along it never decrease.
// Target, Path and Cost are filled only when WithTarget was given:
// Path is nil and Cost is Infinity when the target is unreachable.
type Result struct {
	Source    string
	Steps     []Step
	Distances map[string]float64
	Previous  map[string]string
	Order     []string

	Target string
	Path   []string
	Cost   float64
}

// Options configures Run.
type Options struct {
	Target   string
	TieBreak TieBreak
	Logger   zerolog.Logger
	NoSteps  bool
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns insertion-order tie-breaking, step recording, no
// target and a no-op logger.
func DefaultOptions() Options {
	return Options{
		TieBreak: TieBreakInsertion,
		Logger:   zerolog.Nop(),
	}
}

// WithTarget asks Run to reconstruct the shortest path to id.
// Panics on an empty id.
func WithTarget(id string) Option {
	if id == "" {
		panic("dijkstra: WithTarget(\"\")")
	}
	return func(o *Options) {
		o.Target = id
	}
}

// WithTieBreak sets the rule used among equal minimum distances.
// Panics on an unknown rule.
func WithTieBreak(rule TieBreak) Option {
	if rule != TieBreakInsertion && rule != TieBreakNaturalID {
		panic("dijkstra: WithTieBreak(unknown rule)")
	}
	return func(o *Options) {
		o.TieBreak = rule
	}
}

// WithLogger attaches a zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithoutSteps disables Step snapshots; Result.Steps stays nil.
func WithoutSteps() Option {
	return func(o *Options) {
		o.NoSteps = true
	}
}

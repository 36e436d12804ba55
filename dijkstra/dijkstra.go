// Package dijkstra implements a step-recording Dijkstra shortest-path engine.
//
// Every edge is traversed in both directions (the graphs are undirected by
// meaning); weights must be non-negative.
//
// Complexity:
//
//   - Time:  O(V² + E) for the linear minimum scan, plus O(V) per recorded
//     Step for the snapshot copies (O(V²) overall).
//   - Space: O(V) working state plus O(V²) for the Step history.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Selection is a linear scan over the unvisited set so that ties resolve
//     by a documented rule instead of heap order.
//   - Visited/unvisited membership is a bitset over graph insertion indices.
package dijkstra

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/maruel/natural"

	"github.com/katalvlaran/pathlab/core"
)

// noNode marks "no vertex" in index-based state.
const noNode = -1

// Run computes shortest distances from source to every vertex of g and
// records one Step per finalization.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrSourceNotFound).
//  4. g must contain the WithTarget vertex, if any (ErrTargetNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// The graph must not be mutated while Run executes.
func Run(g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if cfg.Target != "" && !g.HasNode(cfg.Target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
	}

	// 3) Pre-scan for negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s has weight %g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Initialize runner and execute
	r := newRunner(g, cfg)
	r.init(source)
	r.process()

	res := &Result{
		Source:    source,
		Steps:     r.steps,
		Distances: r.distanceMap(),
		Previous:  r.previousMap(),
		Order:     r.order,
		Cost:      Infinity,
	}
	if cfg.Target != "" {
		res.Target = cfg.Target
		res.Path, res.Cost, _ = res.PathTo(cfg.Target)
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	cfg     Options
	ids     []string       // vertex IDs in insertion order
	index   map[string]int // ID → position in ids
	dist    []float64
	prev    []int
	visited *bitset.BitSet
	order   []string
	steps   []Step
}

func newRunner(g *core.Graph, cfg Options) *runner {
	ids := g.NodeIDs()
	n := len(ids)
	r := &runner{
		g:       g,
		cfg:     cfg,
		ids:     ids,
		index:   make(map[string]int, n),
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: bitset.New(uint(n)),
		order:   make([]string, 0, n),
	}
	for i, id := range ids {
		r.index[id] = i
		r.dist[i] = Infinity
		r.prev[i] = noNode
	}

	return r
}

// init sets dist[source]=0 and records the initial snapshot.
func (r *runner) init(source string) {
	r.dist[r.index[source]] = 0
	if !r.cfg.NoSteps {
		r.steps = make([]Step, 0, len(r.ids)+1)
	}
	r.record(noNode, r.selectNext())
}

// process is the core loop: select, finalize, relax, then snapshot together
// with the next candidate. It stops when no unvisited vertex has a finite
// distance.
func (r *runner) process() {
	for u := r.selectNext(); u != noNode; {
		r.visited.Set(uint(u))
		r.order = append(r.order, r.ids[u])
		r.cfg.Logger.Debug().Str("node", r.ids[u]).Float64("dist", r.dist[u]).Msg("finalized")

		r.relax(u)

		next := r.selectNext()
		r.record(u, next)
		u = next
	}
}

// selectNext returns the unvisited vertex with the smallest finite distance,
// or noNode when none is left.
func (r *runner) selectNext() int {
	best := noNode
	for i := range r.ids {
		if r.visited.Test(uint(i)) || r.dist[i] == Infinity {
			continue
		}
		if best == noNode || r.dist[i] < r.dist[best] {
			best = i
			continue
		}
		if r.dist[i] == r.dist[best] && r.cfg.TieBreak == TieBreakNaturalID && natural.Less(r.ids[i], r.ids[best]) {
			best = i
		}
	}

	return best
}

// relax examines every edge incident to u and improves neighbor distances.
// A finalized neighbor that is already at least as close as u is skipped.
func (r *runner) relax(u int) {
	uid := r.ids[u]
	for _, e := range r.g.IncidentEdges(uid) {
		v, ok := r.index[e.Other(uid)]
		if !ok {
			continue
		}
		if r.visited.Test(uint(v)) && r.dist[v] <= r.dist[u] {
			continue
		}
		if nd := r.dist[u] + e.Weight; nd < r.dist[v] {
			r.cfg.Logger.Debug().
				Str("from", uid).
				Str("to", r.ids[v]).
				Float64("old", r.dist[v]).
				Float64("new", nd).
				Msg("relaxed")
			r.dist[v] = nd
			r.prev[v] = u
		}
	}
}

// record appends a deep-copied Step unless snapshots are disabled.
func (r *runner) record(current, next int) {
	if r.cfg.NoSteps {
		return
	}
	step := Step{
		CurrentNodeID:   r.idOf(current),
		CurrentShortest: r.idOf(next),
		Distances:       r.distanceMap(),
		Previous:        r.previousMap(),
		Visited:         make([]string, 0, r.visited.Count()),
		Unvisited:       make([]string, 0, uint(len(r.ids))-r.visited.Count()),
	}
	for i, id := range r.ids {
		if r.visited.Test(uint(i)) {
			step.Visited = append(step.Visited, id)
		} else {
			step.Unvisited = append(step.Unvisited, id)
		}
	}
	r.steps = append(r.steps, step)
}

func (r *runner) idOf(i int) string {
	if i == noNode {
		return ""
	}
	return r.ids[i]
}

// distanceMap copies the distance state into a fresh map.
func (r *runner) distanceMap() map[string]float64 {
	m := make(map[string]float64, len(r.ids))
	for i, id := range r.ids {
		m[id] = r.dist[i]
	}

	return m
}

// previousMap copies the predecessor state into a fresh map ("" for none).
func (r *runner) previousMap() map[string]string {
	m := make(map[string]string, len(r.ids))
	for i, id := range r.ids {
		m[id] = r.idOf(r.prev[i])
	}

	return m
}

// Package export turns engine results into JSON documents for rendering
// collaborators. Distances of +Inf encode as null.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/maruel/natural"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/gridpath"
)

// ErrBadGrid indicates grid input that cannot be parsed.
var ErrBadGrid = errors.New("export: malformed grid")

// NodeDoc is one vertex.
type NodeDoc struct {
	ID     string  `json:"id"`
	Value  float64 `json:"value"`
	Degree int     `json:"degree"`
}

// EdgeDoc is one edge.
type EdgeDoc struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// StatsDoc summarizes a graph.
type StatsDoc struct {
	Nodes    int     `json:"nodes"`
	Edges    int     `json:"edges"`
	MaxEdges int     `json:"max_edges"`
	Density  float64 `json:"density"`
	Isolated int     `json:"isolated"`
}

// GraphDocument is the rendering payload for a graph.
type GraphDocument struct {
	Nodes []NodeDoc `json:"nodes"`
	Edges []EdgeDoc `json:"edges"`
	Stats StatsDoc  `json:"stats"`
}

// NewGraphDocument snapshots g.
func NewGraphDocument(g *core.Graph) GraphDocument {
	view := g.View()
	stats := g.Stats()
	doc := GraphDocument{
		Nodes: make([]NodeDoc, len(view.Nodes)),
		Edges: make([]EdgeDoc, len(view.Edges)),
		Stats: StatsDoc{
			Nodes:    stats.NodeCount,
			Edges:    stats.EdgeCount,
			MaxEdges: stats.MaxEdges,
			Density:  stats.Density,
			Isolated: stats.IsolatedCount,
		},
	}
	for i, n := range view.Nodes {
		doc.Nodes[i] = NodeDoc{ID: n.ID, Value: n.Value, Degree: n.Degree}
	}
	for i, e := range view.Edges {
		doc.Edges[i] = EdgeDoc{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
	}

	return doc
}

// DistanceEntry is the final state of one vertex.
type DistanceEntry struct {
	ID       string   `json:"id"`
	Distance *float64 `json:"distance"`
	Previous string   `json:"previous,omitempty"`
}

// StepDoc mirrors dijkstra.Step.
type StepDoc struct {
	Index     int                 `json:"index"`
	Current   string              `json:"current"`
	Next      string              `json:"next"`
	Distances map[string]*float64 `json:"distances"`
	Previous  map[string]string   `json:"previous"`
	Visited   []string            `json:"visited"`
	Unvisited []string            `json:"unvisited"`
}

// DijkstraDocument is the rendering payload for a Dijkstra run.
// Distances are listed in natural ID order.
type DijkstraDocument struct {
	Source    string          `json:"source"`
	Target    string          `json:"target,omitempty"`
	Path      []string        `json:"path,omitempty"`
	Cost      *float64        `json:"cost,omitempty"`
	Order     []string        `json:"order"`
	Distances []DistanceEntry `json:"distances"`
	Steps     []StepDoc       `json:"steps,omitempty"`
}

// NewDijkstraDocument converts res.
func NewDijkstraDocument(res *dijkstra.Result) DijkstraDocument {
	doc := DijkstraDocument{
		Source:    res.Source,
		Target:    res.Target,
		Path:      res.Path,
		Order:     res.Order,
		Distances: make([]DistanceEntry, 0, len(res.Distances)),
	}
	if res.Target != "" {
		doc.Cost = finite(res.Cost)
	}

	ids := make([]string, 0, len(res.Distances))
	for id := range res.Distances {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return natural.Less(ids[i], ids[j]) })
	for _, id := range ids {
		doc.Distances = append(doc.Distances, DistanceEntry{
			ID:       id,
			Distance: finite(res.Distances[id]),
			Previous: res.Previous[id],
		})
	}

	if len(res.Steps) > 0 {
		doc.Steps = make([]StepDoc, len(res.Steps))
		for i, st := range res.Steps {
			dist := make(map[string]*float64, len(st.Distances))
			for id, d := range st.Distances {
				dist[id] = finite(d)
			}
			doc.Steps[i] = StepDoc{
				Index:     i,
				Current:   st.CurrentNodeID,
				Next:      st.CurrentShortest,
				Distances: dist,
				Previous:  st.Previous,
				Visited:   st.Visited,
				Unvisited: st.Unvisited,
			}
		}
	}

	return doc
}

// GridDocument is the rendering payload for a grid run.
type GridDocument struct {
	Rows  int         `json:"rows"`
	Cols  int         `json:"cols"`
	Grid  [][]float64 `json:"grid"`
	Cost  float64     `json:"cost"`
	Path  [][2]int    `json:"path"`
	Table [][]float64 `json:"table"`
	Moves [][]string  `json:"moves"`
}

// NewGridDocument converts res, keeping the input grid alongside.
func NewGridDocument(grid [][]float64, res *gridpath.Result) GridDocument {
	doc := GridDocument{
		Rows:  len(res.Table),
		Grid:  grid,
		Cost:  res.Cost,
		Path:  make([][2]int, len(res.Path)),
		Table: res.Table,
		Moves: make([][]string, len(res.Moves)),
	}
	if doc.Rows > 0 {
		doc.Cols = len(res.Table[0])
	}
	for i, c := range res.Path {
		doc.Path[i] = [2]int{c.Row, c.Col}
	}
	for r, line := range res.Moves {
		doc.Moves[r] = make([]string, len(line))
		for c, m := range line {
			doc.Moves[r][c] = m.String()
		}
	}

	return doc
}

// Encode writes v as JSON followed by a newline.
func Encode(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}

	return nil
}

// DecodeGrid reads a grid either as a bare JSON matrix ([[1,3],[2,1]]) or
// as an object with a "grid" field.
func DecodeGrid(r io.Reader) ([][]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("export: read grid: %w", err)
	}
	data = bytes.TrimSpace(data)

	var grid [][]float64
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Grid [][]float64 `json:"grid"`
		}
		err = json.Unmarshal(data, &wrapped)
		grid = wrapped.Grid
	} else {
		err = json.Unmarshal(data, &grid)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGrid, err)
	}

	return grid, nil
}

// ParseGrid reads the compact flag form: rows separated by ';', cells by ','.
// Example: "1,3;2,1".
func ParseGrid(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	lines := strings.Split(s, ";")
	grid := make([][]float64, len(lines))
	for r, line := range lines {
		cells := strings.Split(line, ",")
		grid[r] = make([]float64, len(cells))
		for c, cell := range cells {
			f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrBadGrid, r, c, err)
			}
			grid[r][c] = f
		}
	}

	return grid, nil
}

// finite returns nil for ±Inf and NaN, a pointer to d otherwise.
func finite(d float64) *float64 {
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return nil
	}

	return &d
}

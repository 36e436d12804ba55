package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/core"
)

// buildGraph creates nodes for ids and edges for each pair in edges.
func buildGraph(ids []string, edges [][2]string) *core.Graph {
	g := core.NewGraph()
	for _, id := range ids {
		g.AddNode(id, 0)
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddNode("A", 0)
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_FollowsBothDirections checks that incoming edges are traversed.
func TestBFS_FollowsBothDirections(t *testing.T) {
	// Stored as B→A, C→B, C→D: only reachable from A by walking edges backwards.
	g := buildGraph([]string{"A", "B", "C", "D"}, [][2]string{{"B", "A"}, {"C", "B"}, {"C", "D"}})

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["D"]; d != 3 {
		t.Errorf("Depth[D] = %d; want 3", d)
	}
	path, err := res.PathTo("D")
	if err != nil || !reflect.DeepEqual(path, []string{"A", "B", "C", "D"}) {
		t.Errorf("PathTo(D) = %v, %v", path, err)
	}
}

// TestBFS_MaxDepth verifies the depth cut-off.
func TestBFS_MaxDepth(t *testing.T) {
	g := buildGraph([]string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo("D"); err == nil {
		t.Error("PathTo(D) should fail beyond MaxDepth")
	}
}

// TestBFS_OnVisitAbort checks hook error propagation.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := buildGraph([]string{"A", "B"}, [][2]string{{"A", "B"}})
	stop := errors.New("stop")

	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}
}

// TestConnected covers trivial, connected and split graphs.
func TestConnected(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want bool
	}{
		{"nil", nil, true},
		{"empty", core.NewGraph(), true},
		{"single", buildGraph([]string{"A"}, nil), true},
		{"pair-disconnected", buildGraph([]string{"A", "B"}, nil), false},
		{"chain", buildGraph([]string{"A", "B", "C"}, [][2]string{{"C", "B"}, {"A", "B"}}), true},
		{"two-components", buildGraph([]string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"C", "D"}}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bfs.Connected(tc.g); got != tc.want {
				t.Errorf("Connected = %v; want %v", got, tc.want)
			}
		})
	}
}

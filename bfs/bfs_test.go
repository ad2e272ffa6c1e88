package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/puzzlebox/bfs"
	"github.com/katalvlaran/puzzlebox/core"
)

// square builds the undirected cycle 0–1–2–3–0.
func square() *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, id := range []string{"A", "B", "C", "D"} {
		g.AddNode(id)
	}
	_ = g.AddEdge(0, 1, false)
	_ = g.AddEdge(1, 2, false)
	_ = g.AddEdge(2, 3, false)
	_ = g.AddEdge(3, 0, false)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	var nilGraph *core.Graph[string]
	if _, err := bfs.BFS(nilGraph, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := square()
	if _, err := bfs.BFS(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	res, err := bfs.BFS(square(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[int]int{0: 0, 1: 1, 3: 1, 2: 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	path, err := res.PathTo(2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(2) = %v; want %v", path, want)
	}
}

// TestBFS_DirectedAndReverse checks that arcs are only followed forwards
// unless WithReverse is supplied.
func TestBFS_DirectedAndReverse(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 4; i++ {
		g.AddNode(i)
	}
	_ = g.AddEdge(0, 1, true)
	_ = g.AddEdge(1, 2, true)
	_ = g.AddEdge(3, 2, true)

	fwd, _ := bfs.BFS(g, 1)
	if want := []int{1, 2}; !reflect.DeepEqual(fwd.Order, want) {
		t.Errorf("forward Order = %v; want %v", fwd.Order, want)
	}
	rev, _ := bfs.BFS(g, 2, bfs.WithReverse())
	if want := []int{2, 1, 3, 0}; !reflect.DeepEqual(rev.Order, want) {
		t.Errorf("reverse Order = %v; want %v", rev.Order, want)
	}
}

// TestMultiBFS_Sources seeds several sources at depth zero.
func TestMultiBFS_Sources(t *testing.T) {
	res, err := bfs.MultiBFS(square(), []int{0, 2, 0})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2, 1, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for _, id := range []int{1, 3} {
		if res.Depth[id] != 1 {
			t.Errorf("Depth[%d] = %d; want 1", id, res.Depth[id])
		}
	}
}

// TestBFS_FilterAndMaxDepth verifies neighbor filtering and depth limiting.
func TestBFS_FilterAndMaxDepth(t *testing.T) {
	g := square()
	res, _ := bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 3 }))
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
	if res.Reached(3) {
		t.Error("node 3 should be filtered out")
	}

	lim, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	if want := []int{0, 1, 3}; !reflect.DeepEqual(lim.Order, want) {
		t.Errorf("MaxDepth(1) Order = %v; want %v", lim.Order, want)
	}
	if _, err := lim.PathTo(2); err == nil {
		t.Error("PathTo(2) should fail beyond MaxDepth")
	}
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(square(), 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop error, got %v", err)
	}
}

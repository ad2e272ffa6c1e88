package walk

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/puzzlebox/bfs"
	"github.com/katalvlaran/puzzlebox/dfs"
	"github.com/katalvlaran/puzzlebox/rng"
	"github.com/katalvlaran/puzzlebox/state"
	"github.com/katalvlaran/puzzlebox/transition"
)

// Start is the index of the initial state, the all-zero Total.
const Start = 0

// Sample runs the given strategy on g. goals is ignored by RandomWalk.
func Sample(g *transition.Graph, strategy Strategy, goals []state.Total, src rng.Source) (*Path, error) {
	switch strategy {
	case RandomWalk:
		return RandomWalkFrom(g, Start, src)
	case GoalDirected:
		return GoalWalk(g, Start, goals, src)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
}

// RandomWalkFrom steps from start to a uniformly chosen unvisited successor
// until none is left.
//
// Complexity: O(V + E).
func RandomWalkFrom(g *transition.Graph, start int, src rng.Source) (*Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cg := g.Core()
	if !cg.Has(start) {
		return nil, fmt.Errorf("walk: start %d: %w", start, bfs.ErrStartVertexNotFound)
	}
	visited := map[int]bool{start: true}
	nodes := []int{start}
	for cur := start; ; {
		succ, err := cg.Successors(cur)
		if err != nil {
			return nil, fmt.Errorf("walk: %w", err)
		}
		open := succ[:0:0]
		for _, n := range succ {
			if !visited[n] {
				open = append(open, n)
			}
		}
		if len(open) == 0 {
			break
		}
		cur = open[rng.Pick(src, len(open))]
		visited[cur] = true
		nodes = append(nodes, cur)
	}
	return newPath(g, nodes)
}

// GoalWalk samples an acyclic path from start to one of goals.
//
// Pruning keeps the nodes reachable from start from which some goal is
// still reachable, and repeats the forward pass over the kept nodes until
// nothing changes. A goal is drawn uniformly from the kept goals (in index
// order) and dfs.RandomPath samples the path over kept nodes only.
//
// Returns ErrUnreachableGoal if no goal is kept or start is pruned.
func GoalWalk(g *transition.Graph, start int, goals []state.Total, src rng.Source) (*Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	goalIdx := make(map[int]bool, len(goals))
	for _, t := range goals {
		i, err := g.Index(t)
		if err != nil {
			return nil, fmt.Errorf("walk: goal %v: %w", t, err)
		}
		goalIdx[i] = true
	}

	kept, err := prune(g, start, goalIdx)
	if err != nil {
		return nil, err
	}
	if !kept[start] {
		return nil, ErrUnreachableGoal
	}
	var reachable []int
	for i := range goalIdx {
		if kept[i] {
			reachable = append(reachable, i)
		}
	}
	if len(reachable) == 0 {
		return nil, ErrUnreachableGoal
	}
	sort.Ints(reachable)
	target := reachable[rng.Pick(src, len(reachable))]

	nodes, err := dfs.RandomPath(g.Core(), start,
		func(id int) bool { return id == target },
		src,
		dfs.WithFilterNeighbor(func(_, n int) bool { return kept[n] }),
	)
	if errors.Is(err, dfs.ErrNoPath) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachableGoal, err)
	}
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	return newPath(g, nodes)
}

// prune returns the set of nodes reachable from start, restricted to those
// that can reach a goal, iterated to a fixed point.
func prune(g *transition.Graph, start int, goals map[int]bool) (map[int]bool, error) {
	cg := g.Core()
	keep := func(_, n int) bool { return true }
	var kept map[int]bool
	for {
		fwd, err := bfs.BFS(cg, start, bfs.WithFilterNeighbor(keep))
		if err != nil {
			return nil, fmt.Errorf("walk: forward reachability: %w", err)
		}
		var sources []int
		for _, id := range fwd.Order {
			if goals[id] {
				sources = append(sources, id)
			}
		}
		next := make(map[int]bool, len(fwd.Order))
		if len(sources) > 0 {
			back, err := bfs.MultiBFS(cg, sources,
				bfs.WithReverse(),
				bfs.WithFilterNeighbor(func(_, n int) bool { return fwd.Reached(n) }),
			)
			if err != nil {
				return nil, fmt.Errorf("walk: backward reachability: %w", err)
			}
			for _, id := range back.Order {
				next[id] = true
			}
		}
		if kept != nil && len(next) == len(kept) {
			return next, nil
		}
		kept = next
		if len(kept) == 0 || !kept[start] {
			return kept, nil
		}
		snapshot := kept
		keep = func(_, n int) bool { return snapshot[n] }
	}
}

// newPath resolves node indices into states, deltas and direction flags.
func newPath(g *transition.Graph, nodes []int) (*Path, error) {
	p := &Path{
		Nodes:         nodes,
		States:        make([]state.Total, len(nodes)),
		Bidirectional: make([]bool, 0, len(nodes)),
		Deltas:        make([]state.Delta, 0, len(nodes)),
	}
	for i, id := range nodes {
		t, err := g.State(id)
		if err != nil {
			return nil, fmt.Errorf("walk: %w", err)
		}
		p.States[i] = t
		if i == 0 {
			continue
		}
		d, err := state.DeltaBetween(g.Space(), p.States[i-1], t)
		if err != nil {
			return nil, fmt.Errorf("walk: step %d: %w", i, err)
		}
		p.Deltas = append(p.Deltas, d)
		p.Bidirectional = append(p.Bidirectional, g.HasArc(id, nodes[i-1]))
	}
	return p, nil
}

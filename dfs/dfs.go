package dfs

import (
	"fmt"

	"github.com/katalvlaran/puzzlebox/core"
	"github.com/katalvlaran/puzzlebox/rng"
)

// pathWalker encapsulates state during a randomized search.
type pathWalker[N any] struct {
	graph   *core.Graph[N]
	opts    DFSOptions
	isGoal  func(int) bool
	src     rng.Source
	visited map[int]bool
	stack   []int
}

// RandomPath returns a simple path from start to the first node accepted by
// isGoal. At every node the next step is drawn uniformly from the unvisited
// successors that pass the filter; a branch that cannot reach a goal is
// abandoned and another successor is drawn. Visited nodes are never
// re-entered, so every reachable node is explored at most once.
//
// If start itself is a goal the path is [start].
func RandomPath[N any](g *core.Graph[N], start int, isGoal func(int) bool, src rng.Source, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &pathWalker[N]{
		graph:   g,
		opts:    o,
		isGoal:  isGoal,
		src:     src,
		visited: make(map[int]bool, g.Len()),
		stack:   make([]int, 0, g.Len()),
	}
	found, err := w.traverse(start)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: from %d", ErrNoPath, start)
	}

	return w.stack, nil
}

// traverse pushes id and reports whether a goal was reached below it.
// On failure id is popped but stays visited.
func (w *pathWalker[N]) traverse(id int) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	w.visited[id] = true
	w.stack = append(w.stack, id)
	if w.isGoal(id) {
		return true, nil
	}
	if w.opts.MaxDepth > 0 && len(w.stack) > w.opts.MaxDepth {
		w.stack = w.stack[:len(w.stack)-1]
		return false, nil
	}

	succ, err := w.graph.Successors(id)
	if err != nil {
		return false, fmt.Errorf("dfs: successors of %d: %w", id, err)
	}
	for {
		candidates := succ[:0:0]
		for _, nid := range succ {
			if !w.visited[nid] && w.opts.FilterNeighbor(id, nid) {
				candidates = append(candidates, nid)
			}
		}
		if len(candidates) == 0 {
			break
		}
		next := candidates[rng.Pick(w.src, len(candidates))]
		found, err := w.traverse(next)
		if err != nil || found {
			return found, err
		}
	}
	w.stack = w.stack[:len(w.stack)-1]

	return false, nil
}

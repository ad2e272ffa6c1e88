package bfs

import (
	"fmt"

	"github.com/katalvlaran/puzzlebox/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// arcSource is the part of core.Graph the walker needs.
type arcSource interface {
	Has(i int) bool
	Len() int
	Successors(u int) ([]int, error)
	Predecessors(v int) ([]int, error)
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph arcSource
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[N any](g *core.Graph[N], start int, opts ...Option) (*BFSResult, error) {
	return MultiBFS(g, []int{start}, opts...)
}

// MultiBFS runs one breadth-first search seeded with every index in sources
// at depth 0. Duplicate sources are visited once.
func MultiBFS[N any](g *core.Graph[N], sources []int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, s := range sources {
		if !g.Has(s) {
			return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, s)
		}
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	for _, s := range sources {
		if !w.res.Reached(s) {
			w.enqueue(s, 0, -1)
		}
	}

	return w.res, w.loop()
}

// enqueue marks id discovered at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	var (
		neighbors []int
		err       error
	)
	if w.opts.Reverse {
		neighbors, err = w.graph.Predecessors(item.id)
	} else {
		neighbors, err = w.graph.Successors(item.id)
	}
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.res.Reached(nbr) {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
	return nil
}

package enclave

import (
	"fmt"

	"github.com/katalvlaran/puzzlebox/bfs"
	"github.com/katalvlaran/puzzlebox/core"
	"github.com/katalvlaran/puzzlebox/state"
	"github.com/katalvlaran/puzzlebox/walk"
)

// AssignOption customizes Assign.
type AssignOption func(*assignOptions)

type assignOptions struct {
	startRoom int
}

// WithStartRoom sets the room the player starts in. Default 0.
func WithStartRoom(room int) AssignOption {
	return func(o *assignOptions) { o.startRoom = room }
}

// Door is an adjacency between two enclaves and the delta that opens it.
// From precedes To in the progression.
type Door struct {
	From, To int
	Delta    state.Delta
}

// Progression is the result of Assign.
type Progression struct {
	// Start is the enclave holding the start room.
	Start int
	// Order lists enclave IDs in the order their deltas are collected;
	// the last one is terminal.
	Order []int
	// Doors lists every enclave adjacency once, ordered by (From, To) of
	// the underlying adjacency edge.
	Doors []Door

	gates map[[2]int]state.Delta
}

// Gate returns the delta on the door between enclaves a and b.
func (p *Progression) Gate(a, b int) (state.Delta, bool) {
	d, ok := p.gates[pairKey(a, b)]
	return d, ok
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Assign gives each distinct delta of path to one enclave of l and records,
// for every state on path, the enclaves reachable under it.
//
// The enclave holding the start room receives the first delta; each next
// delta goes to the lowest-ID (largest) enclave adjacent to the ones already
// placed. The door between two adjacent enclaves is gated by the delta of the
// enclave placed just before the later of the two.
//
// Returns ErrPartitionCapacity unless the layout has exactly one more
// enclave than the path has distinct deltas.
func Assign(l *Layout, space *state.Space, path *walk.Path, opts ...AssignOption) (*Progression, error) {
	if l == nil || path == nil {
		return nil, ErrLayoutNil
	}
	var o assignOptions
	for _, opt := range opts {
		opt(&o)
	}
	deltas := path.DistinctDeltas()
	if len(l.Enclaves) != len(deltas)+1 {
		return nil, fmt.Errorf("%w: %d enclaves for %d distinct deltas",
			ErrPartitionCapacity, len(l.Enclaves), len(deltas))
	}
	start, err := l.Owner(o.startRoom)
	if err != nil {
		return nil, err
	}

	adj := l.Adjacency()
	order, err := progressionOrder(l, adj, start)
	if err != nil {
		return nil, err
	}
	holder := make(map[state.Delta]int, len(deltas))
	for pos, id := range order {
		e := l.Enclaves[id]
		e.Order = pos
		e.Delta = nil
		if pos < len(deltas) {
			d := deltas[pos]
			e.Delta = &d
			holder[d] = id
		}
	}

	p := &Progression{Start: start, Order: order, gates: make(map[[2]int]state.Delta)}
	for _, edge := range adj.Edges() {
		from, to := l.Enclaves[edge.From], l.Enclaves[edge.To]
		if from.Order > to.Order {
			from, to = to, from
		}
		gate := *l.Enclaves[order[to.Order-1]].Delta
		p.Doors = append(p.Doors, Door{From: from.ID, To: to.ID, Delta: gate})
		p.gates[pairKey(from.ID, to.ID)] = gate
	}

	if err := p.accumulate(l, adj, space, path, holder); err != nil {
		return nil, err
	}
	return p, nil
}

// progressionOrder grows the placed set from start one adjacent enclave at a
// time, always taking the lowest ID on the frontier.
func progressionOrder(l *Layout, adj *core.Graph[int], start int) ([]int, error) {
	placed := make([]bool, len(l.Enclaves))
	placed[start] = true
	order := []int{start}
	for len(order) < len(l.Enclaves) {
		next := -1
		for _, id := range order {
			nbs, err := adj.Successors(id)
			if err != nil {
				return nil, fmt.Errorf("enclave: %w", err)
			}
			for _, nb := range nbs {
				if !placed[nb] && (next < 0 || nb < next) {
					next = nb
				}
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("%w: enclaves not connected to enclave %d", state.ErrInvariantViolation, start)
		}
		placed[next] = true
		order = append(order, next)
	}
	return order, nil
}

// accumulate replays path: each state is added to every enclave reachable
// from the current enclave through doors that are open under that state.
// A door is open once its delta has been performed on the path or when the
// state already satisfies it.
func (p *Progression) accumulate(l *Layout, adj *core.Graph[int], space *state.Space, path *walk.Path, holder map[state.Delta]int) error {
	collected := make(map[state.Delta]bool, len(holder))
	for i, t := range path.States {
		cur := p.Start
		if i > 0 {
			d := path.Deltas[i-1]
			collected[d] = true
			cur = holder[d]
		}
		rank, err := space.Rank(t)
		if err != nil {
			return fmt.Errorf("enclave: path state %d: %w", i, err)
		}
		open := func(a, b int) bool {
			gate := p.gates[pairKey(a, b)]
			return collected[gate] || gate.SatisfiedBy(t)
		}
		res, err := bfs.BFS(adj, cur, bfs.WithFilterNeighbor(open))
		if err != nil {
			return fmt.Errorf("enclave: reachability at step %d: %w", i, err)
		}
		for _, id := range res.Order {
			l.Enclaves[id].AddReachable(rank)
		}
	}
	if len(path.States) > 0 {
		rank, err := space.Rank(path.Last())
		if err != nil {
			return fmt.Errorf("enclave: final state: %w", err)
		}
		l.Enclaves[p.Order[len(p.Order)-1]].AddReachable(rank)
	}
	return nil
}

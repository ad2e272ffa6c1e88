package enclave

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/puzzlebox/core"
	"github.com/katalvlaran/puzzlebox/gridgraph"
	"github.com/katalvlaran/puzzlebox/state"
)

// Sentinel errors for partitioning and assignment.
var (
	// ErrPartitionCapacity indicates the grid cannot hold the requested
	// number of enclaves, or the enclave count does not fit the path.
	ErrPartitionCapacity = errors.New("enclave: not enough rooms for the required enclaves")

	// ErrGridNil is returned when Partition receives a nil grid.
	ErrGridNil = errors.New("enclave: grid is nil")

	// ErrLayoutNil is returned when Assign receives a nil layout or path.
	ErrLayoutNil = errors.New("enclave: layout or path is nil")
)

// Enclave is a connected set of rooms behind one gate.
type Enclave struct {
	// ID is the position after sorting by size, largest first.
	ID int
	// Seed is the room the region grew from.
	Seed int
	// Rooms lists member room indices in ascending order.
	Rooms []int
	// Delta is the gate assigned by Assign; nil for the terminal enclave.
	Delta *state.Delta
	// Order is the position in the progression, -1 before Assign.
	Order int

	reachable mapset.Set[int]
}

func newEnclave(seed int) *Enclave {
	return &Enclave{
		Seed:      seed,
		Rooms:     []int{seed},
		Order:     -1,
		reachable: mapset.New[int](),
	}
}

// Terminal reports whether the enclave holds no delta.
func (e *Enclave) Terminal() bool { return e.Delta == nil }

// Size returns the number of rooms.
func (e *Enclave) Size() int { return len(e.Rooms) }

// AddReachable records the state with the given rank as one under which
// the enclave can be entered.
func (e *Enclave) AddReachable(rank int) { e.reachable.Put(rank) }

// Reachable returns the recorded state ranks in ascending order.
func (e *Enclave) Reachable() []int {
	out := make([]int, 0, e.reachable.Size())
	e.reachable.Each(func(r int) { out = append(out, r) })
	sort.Ints(out)
	return out
}

// ReachableStates resolves Reachable against space.
func (e *Enclave) ReachableStates(space *state.Space) ([]state.Total, error) {
	ranks := e.Reachable()
	out := make([]state.Total, len(ranks))
	for i, r := range ranks {
		t, err := space.Unrank(r)
		if err != nil {
			return nil, fmt.Errorf("enclave %d: %w", e.ID, err)
		}
		out[i] = t
	}
	return out, nil
}

// Layout is the result of Partition.
type Layout struct {
	Grid *gridgraph.RoomGrid
	// Enclaves sorted by size, largest first; Enclaves[i].ID == i.
	Enclaves []*Enclave
	// Corridors holds one undirected edge per growth step; node i is room i.
	Corridors *core.Graph[int]

	owner []int
}

// Owner returns the enclave ID of room.
func (l *Layout) Owner(room int) (int, error) {
	if !l.Grid.Contains(room) {
		return -1, fmt.Errorf("enclave: room %d: %w", room, gridgraph.ErrRoomOutOfRange)
	}
	return l.owner[room], nil
}

// Adjacency returns the enclave graph: node i is enclave i, with an
// undirected edge between enclaves that own grid-adjacent rooms.
func (l *Layout) Adjacency() *core.Graph[int] {
	g := core.NewGraph[int](core.WithCapacity(len(l.Enclaves)))
	for _, e := range l.Enclaves {
		g.AddNode(e.ID)
	}
	for room := 0; room < l.Grid.Len(); room++ {
		for _, nb := range l.Grid.Neighbors(room) {
			if a, b := l.owner[room], l.owner[nb]; a != b {
				_ = g.AddEdge(a, b, false)
			}
		}
	}
	return g
}

// Validate checks that the enclaves are disjoint, cover the grid and are
// each one connected region.
func (l *Layout) Validate() error {
	seen := make([]bool, l.Grid.Len())
	for _, e := range l.Enclaves {
		members := make(map[int]bool, len(e.Rooms))
		for _, r := range e.Rooms {
			if seen[r] {
				return fmt.Errorf("%w: room %d in two enclaves", state.ErrInvariantViolation, r)
			}
			seen[r] = true
			members[r] = true
		}
		comps := l.Grid.ConnectedComponents(func(id int) bool { return members[id] })
		if len(comps) != 1 {
			return fmt.Errorf("%w: enclave %d has %d regions", state.ErrInvariantViolation, e.ID, len(comps))
		}
	}
	for r, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: room %d unclaimed", state.ErrInvariantViolation, r)
		}
	}
	return nil
}

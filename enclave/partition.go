package enclave

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/puzzlebox/core"
	"github.com/katalvlaran/puzzlebox/gridgraph"
	"github.com/katalvlaran/puzzlebox/rng"
)

// Partition splits grid into k connected, disjoint enclaves.
//
// Returns ErrGridNil for a nil grid and ErrPartitionCapacity when k < 1 or
// the grid has fewer than k rooms.
func Partition(grid *gridgraph.RoomGrid, k int, src rng.Source) (*Layout, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	n := grid.Len()
	if k < 1 || n < k {
		return nil, fmt.Errorf("%w: %d enclaves on %d rooms", ErrPartitionCapacity, k, n)
	}

	corridors := core.NewGraph[int](core.WithCapacity(n))
	for room := 0; room < n; room++ {
		corridors.AddNode(room)
	}
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	queued := make([]bool, n)
	var queue []int
	enqueue := func(room int) {
		for _, nb := range grid.Neighbors(room) {
			if owner[nb] < 0 && !queued[nb] {
				queued[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	// 1. seeds
	grown := make([]*Enclave, k)
	for i, seed := range rng.Sample(src, n, k) {
		grown[i] = newEnclave(seed)
		owner[seed] = i
	}
	for _, e := range grown {
		enqueue(e.Seed)
	}

	// 2. growth
	for len(queue) > 0 {
		i := rng.Pick(src, len(queue))
		room := queue[i]
		queue = append(queue[:i], queue[i+1:]...)

		var claimed []int
		for _, nb := range grid.Neighbors(room) {
			if owner[nb] >= 0 {
				claimed = append(claimed, nb)
			}
		}
		from := claimed[rng.Pick(src, len(claimed))]
		owner[room] = owner[from]
		grown[owner[from]].Rooms = append(grown[owner[from]].Rooms, room)
		if err := corridors.AddEdge(room, from, false); err != nil {
			return nil, fmt.Errorf("enclave: corridor %d-%d: %w", room, from, err)
		}
		enqueue(room)
	}

	// 3. order by size and renumber
	sorted := make([]*Enclave, k)
	copy(sorted, grown)
	sort.SliceStable(sorted, func(a, b int) bool { return len(sorted[a].Rooms) > len(sorted[b].Rooms) })
	remap := make(map[*Enclave]int, k)
	for id, e := range sorted {
		e.ID = id
		sort.Ints(e.Rooms)
		remap[e] = id
	}
	for room, old := range owner {
		owner[room] = remap[grown[old]]
	}

	return &Layout{
		Grid:      grid,
		Enclaves:  sorted,
		Corridors: corridors,
		owner:     owner,
	}, nil
}

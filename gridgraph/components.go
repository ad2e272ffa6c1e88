package gridgraph

// ConnectedComponents finds the contiguous regions of the rooms accepted by
// member, according to gg.Conn connectivity. Regions are discovered in
// row-major scan order; each lists its rooms in BFS order from the first
// room scanned.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *RoomGrid) ConnectedComponents(member func(id int) bool) [][]int {
	total := gg.Len()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !member(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range gg.Neighbors(u) {
				if !seen[v] && member(v) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

package core

import (
	"fmt"
	"slices"
)

// AddNode appends n to the arena and returns its index.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(n N) int {
	g.nodes = append(g.nodes, n)
	g.out = append(g.out, make(map[int]struct{}))
	g.in = append(g.in, make(map[int]struct{}))

	return len(g.nodes) - 1
}

// Len returns the number of nodes.
func (g *Graph[N]) Len() int { return len(g.nodes) }

// ArcCount returns the number of directed arcs; an undirected edge counts twice.
func (g *Graph[N]) ArcCount() int { return g.arcs }

// Node returns the value stored at index i.
func (g *Graph[N]) Node(i int) (N, error) {
	if !g.has(i) {
		var zero N
		return zero, fmt.Errorf("%w: %d", ErrVertexNotFound, i)
	}
	return g.nodes[i], nil
}

// Nodes returns a copy of the node arena in index order.
func (g *Graph[N]) Nodes() []N {
	return slices.Clone(g.nodes)
}

// Has reports whether i is a valid node index.
func (g *Graph[N]) Has(i int) bool { return g.has(i) }

func (g *Graph[N]) has(i int) bool { return i >= 0 && i < len(g.nodes) }

// AddEdge connects u and v. A directed edge adds the single arc u→v;
// an undirected edge adds both arcs. Re-adding an existing arc is a no-op.
//
// Errors: ErrVertexNotFound for unknown endpoints, ErrLoopNotAllowed for
// u==v without WithLoops().
// Complexity: O(1).
func (g *Graph[N]) AddEdge(u, v int, directed bool) error {
	if !g.has(u) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	if !g.has(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.addArc(u, v)
	if !directed && u != v {
		g.addArc(v, u)
	}
	return nil
}

func (g *Graph[N]) addArc(u, v int) {
	if _, ok := g.out[u][v]; ok {
		return
	}
	g.out[u][v] = struct{}{}
	g.in[v][u] = struct{}{}
	g.arcs++
}

// HasArc reports whether the arc u→v exists.
func (g *Graph[N]) HasArc(u, v int) bool {
	if !g.has(u) || !g.has(v) {
		return false
	}
	_, ok := g.out[u][v]
	return ok
}

// Successors returns the heads of all arcs leaving u in ascending order.
// Complexity: O(d log d).
func (g *Graph[N]) Successors(u int) ([]int, error) {
	if !g.has(u) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	return sortedKeys(g.out[u]), nil
}

// Predecessors returns the tails of all arcs entering v in ascending order.
// Complexity: O(d log d).
func (g *Graph[N]) Predecessors(v int) ([]int, error) {
	if !g.has(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return sortedKeys(g.in[v]), nil
}

// Edges lists every connection once, ordered by (From, To).
// A pair joined in both directions is reported as one Bidirectional edge
// with From < To; remaining arcs are reported as directed edges.
// Complexity: O(V + E log E).
func (g *Graph[N]) Edges() []Edge {
	edges := make([]Edge, 0, g.arcs)
	for u := range g.out {
		for _, v := range sortedKeys(g.out[u]) {
			_, back := g.out[v][u]
			switch {
			case back && u == v:
				edges = append(edges, Edge{From: u, To: v})
			case back && u < v:
				edges = append(edges, Edge{From: u, To: v, Bidirectional: true})
			case back:
				// already reported from the smaller endpoint
			default:
				edges = append(edges, Edge{From: u, To: v})
			}
		}
	}
	return edges
}

// Clone returns a graph with the same node values and an independent arc set.
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	c := &Graph[N]{
		allowLoops: g.allowLoops,
		nodes:      slices.Clone(g.nodes),
		out:        make([]map[int]struct{}, len(g.out)),
		in:         make([]map[int]struct{}, len(g.in)),
		arcs:       g.arcs,
	}
	for i := range g.out {
		c.out[i] = cloneSet(g.out[i])
		c.in[i] = cloneSet(g.in[i])
	}
	return c
}

func cloneSet(s map[int]struct{}) map[int]struct{} {
	c := make(map[int]struct{}, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

func sortedKeys(s map[int]struct{}) []int {
	keys := make([]int, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

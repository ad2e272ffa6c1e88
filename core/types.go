package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a node index that does not exist.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a read-only view of a connection between two node indices.
//
// Bidirectional edges are reported once with From < To.
type Edge struct {
	// From is the source node index.
	From int

	// To is the destination node index.
	To int

	// Bidirectional reports that both arcs From→To and To→From exist.
	Bidirectional bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	allowLoops bool
	capacity   int
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithCapacity preallocates storage for n nodes.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Graph is an arena of nodes of type N plus a set of directed arcs between
// their indices.
type Graph[N any] struct {
	allowLoops bool

	nodes []N
	out   []map[int]struct{} // out[u] = successors of u
	in    []map[int]struct{} // in[v]  = predecessors of v
	arcs  int
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(capacity).
func NewGraph[N any](opts ...GraphOption) *Graph[N] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{
		allowLoops: cfg.allowLoops,
		nodes:      make([]N, 0, cfg.capacity),
		out:        make([]map[int]struct{}, 0, cfg.capacity),
		in:         make([]map[int]struct{}, 0, cfg.capacity),
	}
}

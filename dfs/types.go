package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to RandomPath.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start index does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNoPath indicates that no goal node is reachable under the options.
	ErrNoPath = errors.New("dfs: no path to goal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of RandomPath.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the search.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// FilterNeighbor, if non-nil, is called for each arc curr→neighbor.
	// Return false to ignore that arc.
	FilterNeighbor func(curr, neighbor int) bool

	// MaxDepth, if positive, limits the path to that many arcs.
	// Zero means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns options with a background context, no filter and
// no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFilterNeighbor skips arcs for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxDepth bounds the path length in arcs; negative values are invalid.
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

package transition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlebox/core"
	"github.com/katalvlaran/puzzlebox/state"
)

// ErrSpaceNil is returned when Build receives a nil Space.
var ErrSpaceNil = errors.New("transition: space is nil")

// Option customizes Build.
type Option func(*options)

type options struct {
	rules map[state.Kind]Rule
}

// WithRules overrides the rule of each kind present in rules; kinds absent
// from the map keep their default rule.
func WithRules(rules map[state.Kind]Rule) Option {
	return func(o *options) {
		for k, r := range rules {
			o.rules[k] = r
		}
	}
}

// Graph is the transition graph over every Total of a Space.
type Graph struct {
	space *state.Space
	g     *core.Graph[state.Total]
}

// Transition is one edge of the graph with its endpoint states and gate.
type Transition struct {
	From, To      state.Total
	FromIdx       int
	ToIdx         int
	Bidirectional bool
	Delta         state.Delta
}

// Build enumerates every Total of space and adds the arcs produced by the
// rule of each variable's kind.
//
// Complexity: O(Size · Σ moves_i).
func Build(space *state.Space, opts ...Option) (*Graph, error) {
	if space == nil {
		return nil, ErrSpaceNil
	}
	o := options{rules: DefaultRules()}
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph[state.Total](core.WithCapacity(space.Size()))
	for _, t := range space.EnumerateAll() {
		g.AddNode(t)
	}
	tg := &Graph{space: space, g: g}
	for i := 0; i < space.Len(); i++ {
		if err := tg.AssignTransitionEdges(space.Variable(i), o.rules[space.Variable(i).Kind]); err != nil {
			return nil, err
		}
	}
	return tg, nil
}

// AssignTransitionEdges adds, for every node whose value at v.Index equals a
// move's source value, the arc to the node holding the target value there
// with all other slots unchanged. A nil rule adds nothing, which leaves the
// variable frozen.
func (tg *Graph) AssignTransitionEdges(v state.Variable, rule Rule) error {
	if rule == nil {
		return nil
	}
	moves := rule(v.Cardinality)
	for from, t := range tg.g.Nodes() {
		for _, m := range moves {
			if t[v.Index] != m.From {
				continue
			}
			next := t.Clone()
			next[v.Index] = m.To
			to, err := tg.space.Rank(next)
			if err != nil {
				return fmt.Errorf("transition: variable %d move %d->%d: %w", v.Index, m.From, m.To, err)
			}
			if _, err := state.DeltaBetween(tg.space, t, next); err != nil {
				return fmt.Errorf("transition: variable %d: %w", v.Index, err)
			}
			if err := tg.g.AddEdge(from, to, m.Directed); err != nil {
				return fmt.Errorf("transition: %w", err)
			}
		}
	}
	return nil
}

// Space returns the state space the graph was built from.
func (tg *Graph) Space() *state.Space { return tg.space }

// Core exposes the underlying arena graph for traversal packages.
func (tg *Graph) Core() *core.Graph[state.Total] { return tg.g }

// Len returns the number of nodes.
func (tg *Graph) Len() int { return tg.g.Len() }

// State returns the Total stored at node i.
func (tg *Graph) State(i int) (state.Total, error) { return tg.g.Node(i) }

// States returns every node's Total in index order.
func (tg *Graph) States() []state.Total { return tg.g.Nodes() }

// Index returns the node index of t.
func (tg *Graph) Index(t state.Total) (int, error) { return tg.space.Rank(t) }

// HasArc reports whether the transition u→v exists.
func (tg *Graph) HasArc(u, v int) bool { return tg.g.HasArc(u, v) }

// Transitions lists each connection once, with bidirectional pairs collapsed.
func (tg *Graph) Transitions() ([]Transition, error) {
	edges := tg.g.Edges()
	out := make([]Transition, 0, len(edges))
	for _, e := range edges {
		from, _ := tg.g.Node(e.From)
		to, _ := tg.g.Node(e.To)
		d, err := state.DeltaBetween(tg.space, from, to)
		if err != nil {
			return nil, err
		}
		out = append(out, Transition{
			From: from, To: to,
			FromIdx: e.From, ToIdx: e.To,
			Bidirectional: e.Bidirectional,
			Delta:         d,
		})
	}
	return out, nil
}

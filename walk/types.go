package walk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/puzzlebox/state"
)

var (
	// ErrUnreachableGoal is returned when no goal state survives pruning or
	// the initial node itself is pruned.
	ErrUnreachableGoal = errors.New("walk: no goal state is reachable from the initial state")

	// ErrUnknownStrategy is returned by ParseStrategy.
	ErrUnknownStrategy = errors.New("walk: unknown strategy")

	// ErrGraphNil is returned when a nil transition graph is passed.
	ErrGraphNil = errors.New("walk: graph is nil")
)

// Strategy selects how a Path is sampled.
type Strategy int

const (
	// GoalDirected prunes dead ends and samples a path ending at a goal.
	GoalDirected Strategy = iota
	// RandomWalk wanders until no unvisited successor is left.
	RandomWalk
)

var strategyNames = [...]string{
	GoalDirected: "goal",
	RandomWalk:   "random",
}

// String returns the configuration name of s.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy maps "goal" or "random" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Path is an ordered sequence of states. Step i goes from States[i] to
// States[i+1] and performs Deltas[i]; Bidirectional[i] reports whether the
// reverse transition exists in the graph the path was sampled from.
type Path struct {
	Nodes         []int
	States        []state.Total
	Bidirectional []bool
	Deltas        []state.Delta
}

// Len returns the number of states on the path.
func (p *Path) Len() int { return len(p.Nodes) }

// Last returns the final state of the path.
func (p *Path) Last() state.Total {
	if len(p.States) == 0 {
		return nil
	}
	return p.States[len(p.States)-1]
}

// DistinctDeltas returns each delta once, in order of first occurrence.
func (p *Path) DistinctDeltas() []state.Delta {
	seen := make(map[state.Delta]struct{}, len(p.Deltas))
	out := make([]state.Delta, 0, len(p.Deltas))
	for _, d := range p.Deltas {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

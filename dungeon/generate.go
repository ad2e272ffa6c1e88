package dungeon

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/puzzlebox/condition"
	"github.com/katalvlaran/puzzlebox/enclave"
	"github.com/katalvlaran/puzzlebox/gridgraph"
	"github.com/katalvlaran/puzzlebox/rng"
	"github.com/katalvlaran/puzzlebox/state"
	"github.com/katalvlaran/puzzlebox/transition"
	"github.com/katalvlaran/puzzlebox/walk"
)

// Generate builds a dungeon from cfg.
func Generate(cfg Config, opts ...Option) (*Dungeon, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rng.New(cfg.Seed)
	}
	d := &Dungeon{RunID: uuid.New(), Config: cfg}
	log := o.log.With(zap.String("run_id", d.RunID.String()))

	space, err := state.NewSpace(cfg.Variables)
	if err != nil {
		return nil, fmt.Errorf("dungeon: state space: %w", err)
	}
	for i, g := range cfg.Goals {
		if err := space.Validate(g); err != nil {
			return nil, fmt.Errorf("dungeon: goal %d: %w", i, err)
		}
	}
	d.Space = space
	log.Debug("state space ready", zap.Int("variables", space.Len()), zap.Int("states", space.Size()))

	if d.Graph, err = transition.Build(space); err != nil {
		return nil, fmt.Errorf("dungeon: transition graph: %w", err)
	}
	log.Debug("transition graph built", zap.Int("arcs", d.Graph.Core().ArcCount()))

	if d.Path, err = walk.Sample(d.Graph, cfg.Strategy, cfg.Goals, o.src); err != nil {
		return nil, fmt.Errorf("dungeon: path: %w", err)
	}
	deltas := d.Path.DistinctDeltas()
	log.Debug("path sampled",
		zap.Stringer("strategy", cfg.Strategy),
		zap.Int("steps", len(d.Path.Deltas)),
		zap.Int("distinct_deltas", len(deltas)))

	grid, err := gridgraph.NewRoomGrid(cfg.Width, cfg.Height, gridgraph.GridOptions{Conn: cfg.Connectivity})
	if err != nil {
		return nil, fmt.Errorf("dungeon: grid: %w", err)
	}
	if d.Layout, err = enclave.Partition(grid, len(deltas)+1, o.src); err != nil {
		return nil, fmt.Errorf("dungeon: partition: %w", err)
	}
	if err = d.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("dungeon: partition: %w", err)
	}
	if d.Progression, err = enclave.Assign(d.Layout, space, d.Path, enclave.WithStartRoom(cfg.StartRoom)); err != nil {
		return nil, fmt.Errorf("dungeon: assign: %w", err)
	}
	log.Debug("enclaves assigned",
		zap.Int("enclaves", len(d.Layout.Enclaves)),
		zap.Ints("order", d.Progression.Order))

	if d.Gates, err = pairGates(d); err != nil {
		return nil, fmt.Errorf("dungeon: gates: %w", err)
	}
	log.Info("dungeon generated",
		zap.Int("states", space.Size()),
		zap.Int("path_length", d.Path.Len()),
		zap.Int("enclaves", len(d.Layout.Enclaves)),
		zap.Int("gates", len(d.Gates)))

	return d, nil
}

// pairGates simplifies the condition of every enclave pair and keeps the
// non-empty ones.
func pairGates(d *Dungeon) ([]PairGate, error) {
	encs := d.Layout.Enclaves
	reach := make([][]state.Total, len(encs))
	for i, e := range encs {
		states, err := e.ReachableStates(d.Space)
		if err != nil {
			return nil, err
		}
		reach[i] = states
	}
	var out []PairGate
	for a := 0; a < len(encs); a++ {
		for b := a + 1; b < len(encs); b++ {
			g, err := condition.Simplify(d.Space, reach[a], reach[b])
			if err != nil {
				return nil, fmt.Errorf("enclaves %d,%d: %w", a, b, err)
			}
			if !g.Found {
				continue
			}
			_, adjacent := d.Progression.Gate(a, b)
			out = append(out, PairGate{A: a, B: b, Adjacent: adjacent, Gate: g})
		}
	}
	return out, nil
}

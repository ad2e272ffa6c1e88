package dungeon

import (
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

// Config is the validated input of one run.
type Config struct {
	Variables    []state.Variable
	Width        int
	Height       int
	Connectivity gridgraph.Connectivity
	Goals        []state.Total
	Strategy     walk.Strategy
	// Seed drives every random choice; 0 selects rng.DefaultSeed.
	Seed int64
	// StartRoom is the room the player starts in.
	StartRoom int
}

// Option customizes Generate.
type Option func(*options)

type options struct {
	log *zap.Logger
	src rng.Source
}

// WithLogger sets the logger for stage progress. Default zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSource replaces the seeded source built from Config.Seed.
func WithSource(src rng.Source) Option {
	return func(o *options) {
		if src != nil {
			o.src = src
		}
	}
}

// PairGate is the lock between enclaves A < B.
type PairGate struct {
	A, B int
	// Adjacent reports whether the two enclaves share a door.
	Adjacent bool
	Gate     condition.Gate
}

// Dungeon is the plain-data result of a run.
type Dungeon struct {
	RunID       uuid.UUID
	Config      Config
	Space       *state.Space
	Graph       *transition.Graph
	Path        *walk.Path
	Layout      *enclave.Layout
	Progression *enclave.Progression
	// Gates lists every enclave pair with a non-empty condition, ordered by (A, B).
	Gates []PairGate
}

// Nodes returns every total state in index order.
func (d *Dungeon) Nodes() []state.Total { return d.Graph.States() }

// Transitions lists each state graph edge once.
func (d *Dungeon) Transitions() ([]transition.Transition, error) { return d.Graph.Transitions() }

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/puzzlebox/dungeon"
	"github.com/katalvlaran/puzzlebox/gridgraph"
	"github.com/katalvlaran/puzzlebox/state"
	"github.com/katalvlaran/puzzlebox/walk"
)

// ErrConfiguration wraps every validation failure.
var ErrConfiguration = errors.New("config: invalid configuration")

// MaxStates bounds the size of the state space.
const MaxStates = 4096

var validate = validator.New()

// File is the YAML document.
type File struct {
	Seed      int64          `yaml:"seed"`
	Strategy  string         `yaml:"strategy" validate:"oneof=goal random"`
	StartRoom int            `yaml:"start_room" validate:"gte=0"`
	Grid      Grid           `yaml:"grid"`
	Variables []VariableSpec `yaml:"variables" validate:"required,min=1,max=12,dive"`
	Goals     [][]int        `yaml:"goals" validate:"dive,required"`
}

// Grid sizes the room grid.
type Grid struct {
	Width        int `yaml:"width" validate:"min=1,max=64"`
	Height       int `yaml:"height" validate:"min=1,max=64"`
	Connectivity int `yaml:"connectivity" validate:"oneof=4 8"`
}

// VariableSpec is one state variable.
type VariableSpec struct {
	Kind        string `yaml:"kind" validate:"required"`
	Cardinality int    `yaml:"cardinality" validate:"min=2,max=8"`
}

// Default returns a small two-variable dungeon: a three-position dial and a
// switch on a 5×4 grid.
func Default() File {
	return File{
		Strategy: walk.GoalDirected.String(),
		Grid:     Grid{Width: 5, Height: 4, Connectivity: 4},
		Variables: []VariableSpec{
			{Kind: state.NumericCyclic.String(), Cardinality: 3},
			{Kind: state.BinaryReversible.String(), Cardinality: 2},
		},
		Goals: [][]int{{2, 1}},
	}
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document. Unknown keys are rejected; omitted
// strategy and connectivity take the defaults.
func Parse(data []byte) (File, error) {
	f := File{Strategy: walk.GoalDirected.String(), Grid: Grid{Connectivity: 4}}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return f, nil
}

// Validate checks field ranges and the cross-field rules: cardinality per
// kind, state-space bound, goal length and range, start room inside the
// grid, and at least one goal for the goal-directed strategy.
func (f File) Validate() error {
	var errs error
	if err := validate.Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		for _, fe := range fieldErrs {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s failed %q", ErrConfiguration, fe.Namespace(), fe.Tag()))
		}
	}

	cards := make([]int, 0, len(f.Variables))
	size := 1
	for i, v := range f.Variables {
		kind, err := state.ParseKind(v.Kind)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: variable %d: %w", ErrConfiguration, i, err))
			cards = append(cards, v.Cardinality)
			continue
		}
		if _, err := state.NewVariable(i, kind, v.Cardinality); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: variable %d: %w", ErrConfiguration, i, err))
		}
		cards = append(cards, v.Cardinality)
		if v.Cardinality > 0 && size <= MaxStates {
			size *= v.Cardinality
		}
	}
	if size > MaxStates {
		errs = multierr.Append(errs, fmt.Errorf("%w: state space exceeds %d states", ErrConfiguration, MaxStates))
	}

	for g, goal := range f.Goals {
		if len(goal) != len(f.Variables) {
			errs = multierr.Append(errs, fmt.Errorf("%w: goal %d has %d values for %d variables: %w",
				ErrConfiguration, g, len(goal), len(f.Variables), state.ErrStateLength))
			continue
		}
		for i, v := range goal {
			if v < 0 || v >= cards[i] {
				errs = multierr.Append(errs, fmt.Errorf("%w: goal %d slot %d = %d: %w",
					ErrConfiguration, g, i, v, state.ErrStateRange))
			}
		}
	}
	if f.Strategy == walk.GoalDirected.String() && len(f.Goals) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: strategy %q needs at least one goal", ErrConfiguration, f.Strategy))
	}
	if rooms := f.Grid.Width * f.Grid.Height; f.StartRoom >= rooms && rooms > 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: start room %d outside %dx%d grid",
			ErrConfiguration, f.StartRoom, f.Grid.Width, f.Grid.Height))
	}
	return errs
}

// ToConfig validates f and converts it.
func (f File) ToConfig() (dungeon.Config, error) {
	if err := f.Validate(); err != nil {
		return dungeon.Config{}, err
	}
	strategy, err := walk.ParseStrategy(f.Strategy)
	if err != nil {
		return dungeon.Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	cfg := dungeon.Config{
		Width:     f.Grid.Width,
		Height:    f.Grid.Height,
		Strategy:  strategy,
		Seed:      f.Seed,
		StartRoom: f.StartRoom,
	}
	if f.Grid.Connectivity == 8 {
		cfg.Connectivity = gridgraph.Conn8
	}
	for i, v := range f.Variables {
		kind, _ := state.ParseKind(v.Kind)
		cfg.Variables = append(cfg.Variables, state.Variable{Index: i, Kind: kind, Cardinality: v.Cardinality})
	}
	for _, g := range f.Goals {
		cfg.Goals = append(cfg.Goals, state.Total(append([]int(nil), g...)))
	}
	return cfg, nil
}

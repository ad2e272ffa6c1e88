package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/puzzlebox/config"
	"github.com/katalvlaran/puzzlebox/gridgraph"
	"github.com/katalvlaran/puzzlebox/state"
	"github.com/katalvlaran/puzzlebox/walk"
)

const sample = `
seed: 7
strategy: random
start_room: 3
grid:
  width: 6
  height: 5
  connectivity: 8
variables:
  - kind: numeric-cyclic
    cardinality: 3
  - kind: binary-reversible
    cardinality: 2
goals:
  - [2, 1]
`

func TestLoad_Sample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	cfg, err := f.ToConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, walk.RandomWalk, cfg.Strategy)
	assert.Equal(t, 3, cfg.StartRoom)
	assert.Equal(t, 6, cfg.Width)
	assert.Equal(t, 5, cfg.Height)
	assert.Equal(t, gridgraph.Conn8, cfg.Connectivity)
	assert.Equal(t, []state.Variable{
		{Index: 0, Kind: state.NumericCyclic, Cardinality: 3},
		{Index: 1, Kind: state.BinaryReversible, Cardinality: 2},
	}, cfg.Variables)
	assert.Equal(t, []state.Total{{2, 1}}, cfg.Goals)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Defaults(t *testing.T) {
	f, err := config.Parse([]byte(`
grid: {width: 3, height: 3}
variables: [{kind: binary-reversible, cardinality: 2}]
goals: [[1]]
`))
	require.NoError(t, err)
	assert.Equal(t, "goal", f.Strategy)
	assert.Equal(t, 4, f.Grid.Connectivity)
	require.NoError(t, f.Validate())
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("grid: {width: 3, height: 3}\ncolour: red\n"))
	assert.ErrorIs(t, err, config.ErrConfiguration)
}

func TestDefault_IsValid(t *testing.T) {
	cfg, err := config.Default().ToConfig()
	require.NoError(t, err)
	assert.Equal(t, walk.GoalDirected, cfg.Strategy)
	assert.Len(t, cfg.Variables, 2)
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.File)
		want   error
	}{
		{"UnknownKind", func(f *config.File) { f.Variables[0].Kind = "lever" }, state.ErrUnknownKind},
		{"BinaryCardinality", func(f *config.File) { f.Variables[1].Cardinality = 3 }, state.ErrCardinality},
		{"GoalLength", func(f *config.File) { f.Goals = [][]int{{2}} }, state.ErrStateLength},
		{"GoalRange", func(f *config.File) { f.Goals = [][]int{{3, 1}} }, state.ErrStateRange},
		{"NoGoal", func(f *config.File) { f.Goals = nil }, config.ErrConfiguration},
		{"StartRoom", func(f *config.File) { f.StartRoom = 20 }, config.ErrConfiguration},
		{"Strategy", func(f *config.File) { f.Strategy = "spiral" }, config.ErrConfiguration},
		{"Connectivity", func(f *config.File) { f.Grid.Connectivity = 6 }, config.ErrConfiguration},
		{"EmptyGrid", func(f *config.File) { f.Grid.Width = 0 }, config.ErrConfiguration},
		{"TooManyStates", func(f *config.File) {
			for i := 0; i < 5; i++ {
				f.Variables = append(f.Variables, config.VariableSpec{Kind: "numeric-reversible", Cardinality: 8})
			}
			f.Goals = nil
			f.Strategy = "random"
		}, config.ErrConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := config.Default()
			tc.mutate(&f)
			err := f.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, config.ErrConfiguration)

			_, err = f.ToConfig()
			assert.Error(t, err)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	f := config.Default()
	f.Variables[0].Kind = "lever"
	f.Goals = [][]int{{9, 9}}
	f.Grid.Height = 0

	err := f.Validate()
	require.Error(t, err)
	// kind, two goal slots, grid height
	assert.Len(t, multierr.Errors(err), 4)
}

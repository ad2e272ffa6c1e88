package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/puzzlebox/dungeon"
	"github.com/katalvlaran/puzzlebox/render"
	"github.com/katalvlaran/puzzlebox/state"
	"github.com/katalvlaran/puzzlebox/walk"
)

// firstChoice always takes the lowest-index option.
type firstChoice struct{}

func (firstChoice) Intn(int) int { return 0 }

func generate(t *testing.T) *dungeon.Dungeon {
	t.Helper()
	d, err := dungeon.Generate(dungeon.Config{
		Variables: []state.Variable{
			{Kind: state.NumericCyclic, Cardinality: 3},
			{Kind: state.BinaryReversible, Cardinality: 2},
		},
		Width:    5,
		Height:   4,
		Goals:    []state.Total{{2, 1}},
		Strategy: walk.GoalDirected,
	}, dungeon.WithSource(firstChoice{}))
	require.NoError(t, err)
	return d
}

const wantText = `STATE GRAPH
  0F <-> 0T
  0F --> 1F
  0T --> 1T
  1F <-> 1T
  1F --> 2F
  1T --> 2T
  0F <-- 2F
  2F <-> 2T
  0T <-- 2T
STATE WALK
  0F <-> 0T --> 1T <-> 1F --> 2F <-> 2T
ENCLAVES
  B 4 rooms  .*  x1:0<->1
    reachable: 0F 0T 1F 1T 2F 2T
  C 4 rooms  +1.  x0:0->1
    reachable: 0T 1F 1T 2F 2T
  D 4 rooms  +1.  x0:1->2
    reachable: 1F 1T 2F 2T
  A 8 rooms  Boss
    reachable: 2F 2T
MAP
  @CDAA
  BCDAA
  BCDAA
  BCDAA
GATES
  A | B  2.
  A | C  2.
  A | D  2. (door)
`

func TestText_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, generate(t), render.PlainStyles()))
	if diff := cmp.Diff(wantText, buf.String()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestText_StyledKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, generate(t), render.DefaultStyles()))
	out := buf.String()
	for _, s := range []string{"STATE GRAPH", "GATES", "Boss", "@CDAA", "x0:1->2"} {
		assert.Contains(t, out, s)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	d := generate(t)
	var buf bytes.Buffer
	require.NoError(t, render.YAML(&buf, d))

	var doc render.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, d.RunID.String(), doc.RunID)
	assert.Equal(t, "goal", doc.Strategy)
	assert.Equal(t, []string{"0F", "0T", "1F", "1T", "2F", "2T"}, doc.States)
	assert.Len(t, doc.Transitions, 9)
	assert.Equal(t, []string{"0F", "0T", "1T", "1F", "2F", "2T"}, doc.Path)
	assert.Equal(t, []string{"@CDAA", "BCDAA", "BCDAA", "BCDAA"}, doc.Map)

	require.Len(t, doc.Enclaves, 4)
	boss := doc.Enclaves[0]
	assert.Equal(t, "A", boss.Label)
	assert.True(t, boss.Terminal)
	assert.Empty(t, boss.Delta)
	assert.Equal(t, 3, boss.Order)
	assert.Equal(t, []string{"2F", "2T"}, boss.Reachable)
	assert.Equal(t, ".*", doc.Enclaves[1].Mechanism)

	require.Len(t, doc.Gates, 3)
	assert.Equal(t, render.GateDoc{A: "A", B: "D", Adjacent: true, Condition: "2."}, doc.Gates[2])
	assert.True(t, strings.HasPrefix(buf.String(), "run_id:"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "A", render.Label(0))
	assert.Equal(t, "Z", render.Label(25))
	assert.Equal(t, "a", render.Label(26))
	assert.Equal(t, "#", render.Label(60))
	assert.Equal(t, "?", render.Label(-1))
}

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/puzzlebox/dungeon"
	"github.com/katalvlaran/puzzlebox/enclave"
	"github.com/katalvlaran/puzzlebox/state"
)

// Label returns the letter of enclave id.
func Label(id int) string {
	switch {
	case id < 0:
		return "?"
	case id < 26:
		return string(rune('A' + id))
	case id < 52:
		return string(rune('a' + id - 26))
	default:
		return "#"
	}
}

// Mechanism renders what performing d changes: "*" on a reversible
// variable, the signed step otherwise, "." elsewhere.
func Mechanism(space *state.Space, d state.Delta) string {
	before := make(state.Total, space.Len())
	before[d.Var] = d.Before
	after := before.Clone()
	after[d.Var] = d.After
	diff := state.Diff(space, before, after)

	var b strings.Builder
	for _, slot := range diff {
		if slot.Kind == state.SlotConcrete {
			fmt.Fprintf(&b, "%+d", slot.Value)
			continue
		}
		b.WriteString(slot.String())
	}
	return b.String()
}

// Text writes the human-readable report of d.
func Text(w io.Writer, d *dungeon.Dungeon, st Styles) error {
	bw := bufio.NewWriter(w)
	sp := d.Space

	section := func(name string) {
		fmt.Fprintln(bw, st.Title.Render(name))
	}

	section("STATE GRAPH")
	trans, err := d.Transitions()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	for _, tr := range trans {
		switch {
		case tr.Bidirectional:
			fmt.Fprintf(bw, "  %s <-> %s\n", sp.Format(tr.From), sp.Format(tr.To))
		case tr.FromIdx > tr.ToIdx:
			fmt.Fprintf(bw, "  %s <-- %s\n", sp.Format(tr.To), sp.Format(tr.From))
		default:
			fmt.Fprintf(bw, "  %s --> %s\n", sp.Format(tr.From), sp.Format(tr.To))
		}
	}

	section("STATE WALK")
	var line strings.Builder
	for i, t := range d.Path.States {
		if i > 0 {
			if d.Path.Bidirectional[i-1] {
				line.WriteString(" <-> ")
			} else {
				line.WriteString(" --> ")
			}
		}
		line.WriteString(sp.Format(t))
	}
	fmt.Fprintf(bw, "  %s\n", line.String())

	section("ENCLAVES")
	for _, id := range d.Progression.Order {
		e := d.Layout.Enclaves[id]
		fmt.Fprintf(bw, "  %s %s\n", st.Label.Render(Label(e.ID)), enclaveSummary(sp, e, st))
		states, err := e.ReachableStates(sp)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		names := make([]string, len(states))
		for i, t := range states {
			names[i] = sp.Format(t)
		}
		fmt.Fprintf(bw, "    %s %s\n", st.Muted.Render("reachable:"), strings.Join(names, " "))
	}

	section("MAP")
	for _, row := range Map(d) {
		fmt.Fprintf(bw, "  %s\n", row)
	}

	section("GATES")
	if len(d.Gates) == 0 {
		fmt.Fprintf(bw, "  %s\n", st.Muted.Render("none"))
	}
	for _, pg := range d.Gates {
		door := ""
		if pg.Adjacent {
			door = " " + st.Muted.Render("(door)")
		}
		fmt.Fprintf(bw, "  %s | %s  %s%s\n",
			Label(pg.A), Label(pg.B), st.Gate.Render(sp.FormatPartial(pg.Gate.Condition)), door)
	}

	return bw.Flush()
}

func enclaveSummary(sp *state.Space, e *enclave.Enclave, st Styles) string {
	rooms := fmt.Sprintf("%d rooms", e.Size())
	if e.Terminal() {
		return fmt.Sprintf("%s  %s", rooms, st.Boss.Render("Boss"))
	}
	return fmt.Sprintf("%s  %s  %s", rooms, st.Gate.Render(Mechanism(sp, *e.Delta)), e.Delta.String())
}

// Map returns one string per grid row with the label of each room's
// enclave and "@" on the start room.
func Map(d *dungeon.Dungeon) []string {
	grid := d.Layout.Grid
	rows := make([]string, grid.Height)
	for y := 0; y < grid.Height; y++ {
		var b strings.Builder
		for x := 0; x < grid.Width; x++ {
			room := grid.Index(x, y)
			if room == d.Config.StartRoom {
				b.WriteByte('@')
				continue
			}
			id, _ := d.Layout.Owner(room)
			b.WriteString(Label(id))
		}
		rows[y] = b.String()
	}
	return rows
}

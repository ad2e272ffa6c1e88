package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/puzzlebox/dungeon"
)

// Document is the structured form written by YAML.
type Document struct {
	RunID       string       `yaml:"run_id"`
	Seed        int64        `yaml:"seed"`
	Strategy    string       `yaml:"strategy"`
	States      []string     `yaml:"states"`
	Transitions []Transition `yaml:"transitions"`
	Path        []string     `yaml:"path"`
	Enclaves    []EnclaveDoc `yaml:"enclaves"`
	Map         []string     `yaml:"map"`
	Gates       []GateDoc    `yaml:"gates"`
}

// Transition is one state graph edge.
type Transition struct {
	From          string `yaml:"from"`
	To            string `yaml:"to"`
	Bidirectional bool   `yaml:"bidirectional"`
}

// EnclaveDoc describes one enclave.
type EnclaveDoc struct {
	Label     string   `yaml:"label"`
	Order     int      `yaml:"order"`
	Rooms     []int    `yaml:"rooms,flow"`
	Delta     string   `yaml:"delta,omitempty"`
	Mechanism string   `yaml:"mechanism,omitempty"`
	Terminal  bool     `yaml:"terminal"`
	Reachable []string `yaml:"reachable,flow"`
}

// GateDoc is the condition between two enclaves.
type GateDoc struct {
	A         string `yaml:"a"`
	B         string `yaml:"b"`
	Adjacent  bool   `yaml:"adjacent"`
	Condition string `yaml:"condition"`
}

// NewDocument converts d.
func NewDocument(d *dungeon.Dungeon) (*Document, error) {
	sp := d.Space
	doc := &Document{
		RunID:    d.RunID.String(),
		Seed:     d.Config.Seed,
		Strategy: d.Config.Strategy.String(),
		Map:      Map(d),
	}
	for _, t := range d.Nodes() {
		doc.States = append(doc.States, sp.Format(t))
	}
	trans, err := d.Transitions()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	for _, tr := range trans {
		doc.Transitions = append(doc.Transitions, Transition{
			From: sp.Format(tr.From), To: sp.Format(tr.To), Bidirectional: tr.Bidirectional,
		})
	}
	for _, t := range d.Path.States {
		doc.Path = append(doc.Path, sp.Format(t))
	}
	for _, e := range d.Layout.Enclaves {
		ed := EnclaveDoc{Label: Label(e.ID), Order: e.Order, Rooms: e.Rooms, Terminal: e.Terminal()}
		if !e.Terminal() {
			ed.Delta = e.Delta.String()
			ed.Mechanism = Mechanism(sp, *e.Delta)
		}
		states, err := e.ReachableStates(sp)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		for _, t := range states {
			ed.Reachable = append(ed.Reachable, sp.Format(t))
		}
		doc.Enclaves = append(doc.Enclaves, ed)
	}
	for _, pg := range d.Gates {
		doc.Gates = append(doc.Gates, GateDoc{
			A: Label(pg.A), B: Label(pg.B), Adjacent: pg.Adjacent,
			Condition: sp.FormatPartial(pg.Gate.Condition),
		})
	}
	return doc, nil
}

// YAML writes d as a YAML document.
func YAML(w io.Writer, d *dungeon.Dungeon) error {
	doc, err := NewDocument(d)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render: encoding yaml: %w", err)
	}
	return enc.Close()
}

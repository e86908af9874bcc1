package graliffer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// A Snapshot is the minimal loadable program form: a mapping from textual
// positions to cell text, plus where and which way the head starts. The
// YAML shape is
//
//	start: AA
//	direction: right
//	cells:
//	  AA: add
//	  BA: "2"
//
// with direction optional (right by default). Snapshots are how external
// loaders and editors hand programs to the engine; nothing in the core
// mandates files, a Snapshot is just data.
type Snapshot struct {
	Start     string            `yaml:"start"`
	Direction string            `yaml:"direction,omitempty"`
	Cells     map[string]string `yaml:"cells"`
}

// LoadSnapshot decodes a YAML snapshot, rejecting unknown fields, oversize
// cell text, malformed positions, and bad directions.
func LoadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	if _, err := s.Grid(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	if _, err := s.Head(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &s, nil
}

// Grid materializes the snapshot's cells.
func (s *Snapshot) Grid() (*Grid, error) {
	g := NewGrid()
	for pos, text := range s.Cells {
		p, err := ParsePosition(pos)
		if err != nil {
			return nil, err
		}
		if err := g.SetText(p, text); err != nil {
			return nil, fmt.Errorf("cell @%v: %w", p, err)
		}
	}
	return g, nil
}

// Head returns the snapshot's initial program counter. An absent start
// means the origin; an absent direction means right.
func (s *Snapshot) Head() (Head, error) {
	var h Head
	if s.Start != "" {
		p, err := ParsePosition(s.Start)
		if err != nil {
			return Head{}, err
		}
		h.Pos = p
	}
	if s.Direction != "" {
		d, err := ParseDirection(s.Direction)
		if err != nil {
			return Head{}, err
		}
		h.Dir = d
	}
	return h, nil
}

// Save encodes the snapshot as YAML.
func (s *Snapshot) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// TakeSnapshot captures an engine's grid and head, suitable for Save; it is
// the inverse of loading and does not capture the stack or state.
func TakeSnapshot(e *Engine) *Snapshot {
	cells := make(map[string]string, e.grid.Len())
	for _, p := range e.grid.Positions() {
		cells[p.String()] = e.grid.Get(p).Text()
	}
	return &Snapshot{
		Start:     e.head.Pos.String(),
		Direction: e.head.Dir.String(),
		Cells:     cells,
	}
}

type snapshotOption struct{ s *Snapshot }

func withSnapshot(s *Snapshot) snapshotOption { return snapshotOption{s} }

func (o snapshotOption) apply(e *Engine) {
	if o.s == nil {
		return
	}
	if g, err := o.s.Grid(); err == nil {
		e.grid = g
	}
	if h, err := o.s.Head(); err == nil {
		e.head = h
	}
}

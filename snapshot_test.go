package graliffer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSnapshot(t *testing.T) {
	s, err := LoadSnapshot(strings.NewReader(`
start: BA
direction: down
cells:
  AA: add
  BA: "2"
  CA: "3"
`))
	require.NoError(t, err)

	h, err := s.Head()
	require.NoError(t, err)
	assert.Equal(t, Head{Pos: Pos(1, 0), Dir: Down}, h)

	g, err := s.Grid()
	require.NoError(t, err)
	assert.Equal(t, "add", g.Get(Pos(0, 0)).Text())
	assert.Equal(t, "3", g.Get(Pos(2, 0)).Text())
	assert.Equal(t, 3, g.Len())
}

func TestLoadSnapshot_defaults(t *testing.T) {
	s, err := LoadSnapshot(strings.NewReader(`
cells:
  AA: hlt
`))
	require.NoError(t, err)
	h, err := s.Head()
	require.NoError(t, err)
	assert.Equal(t, Head{Pos: Pos(0, 0), Dir: Right}, h)
}

func TestLoadSnapshot_rejects(t *testing.T) {
	for _, tc := range []struct {
		name, doc string
	}{
		{"unknown field", "start: AA\nbogus: 1\ncells: {}\n"},
		{"bad cell position", "cells:\n  \"A-\": add\n"},
		{"oversize cell text", "cells:\n  AA: overflow\n"},
		{"bad start", "start: AAA\ncells: {}\n"},
		{"bad direction", "direction: sideways\ncells: {}\n"},
		{"not yaml", ": :\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSnapshot(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestSnapshot_roundTrip(t *testing.T) {
	e := New(
		WithGrid(mustGrid(t,
			"AA", "set",
			"BA", "@DA",
			"CA", "hlt",
		)),
		WithStart(Pos(0, 0)),
		WithDirection(Right),
	)

	var buf bytes.Buffer
	require.NoError(t, TakeSnapshot(e).Save(&buf))

	s, err := LoadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, "AA", s.Start)
	assert.Equal(t, "right", s.Direction)
	assert.Equal(t, map[string]string{
		"AA": "set",
		"BA": "@DA",
		"CA": "hlt",
	}, s.Cells)
}

func TestWithSnapshot_runs(t *testing.T) {
	s, err := LoadSnapshot(strings.NewReader(`
start: AA
cells:
  AA: add
  BA: "2"
  CA: "3"
  DA: set
  EA: "@AB"
  FA: hlt
`))
	require.NoError(t, err)

	e := New(WithSnapshot(s))
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, Halted, e.State())
	assert.Equal(t, "5", e.CellAt(Pos(0, 1)).Text())
}

package graliffer

import "sort"

// Grid is the sparse 2-D cell store holding both program and data. Only
// written cells occupy storage; reading anywhere else yields a blank Cell.
type Grid struct {
	cells map[Position]Cell
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Position]Cell)}
}

// Get reads the cell at p, blank if never written.
func (g *Grid) Get(p Position) Cell {
	return g.cells[p]
}

// Set writes a cell at p. Writing a blank cell releases the slot, keeping
// the map sparse.
func (g *Grid) Set(p Position, c Cell) {
	if c.IsEmpty() {
		delete(g.cells, p)
		return
	}
	if g.cells == nil {
		g.cells = make(map[Position]Cell)
	}
	g.cells[p] = c
}

// SetText writes raw text at p, failing with a CellOverflowError when it
// exceeds cell capacity; the prior cell contents are left unchanged.
func (g *Grid) SetText(p Position, text string) error {
	c, err := NewCell(text)
	if err != nil {
		return err
	}
	g.Set(p, c)
	return nil
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int { return len(g.cells) }

// Positions returns every occupied position in row-major order.
func (g *Grid) Positions() []Position {
	ps := make([]Position, 0, len(g.cells))
	for p := range g.cells {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
	return ps
}

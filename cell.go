package graliffer

import "github.com/rivo/uniseg"

// CellCapacity is the most grapheme clusters a single cell can hold.
const CellCapacity = 3

// A Cell is one grid slot: up to CellCapacity grapheme clusters of text.
// The zero Cell is blank, which is how never-written grid positions read.
type Cell struct {
	text string
}

// NewCell builds a Cell, failing with a CellOverflowError when the text
// exceeds CellCapacity grapheme clusters. Capacity counts clusters, not
// bytes or runes: a combining sequence or an emoji counts once.
func NewCell(text string) (Cell, error) {
	if uniseg.GraphemeClusterCount(text) > CellCapacity {
		return Cell{}, CellOverflowError{Text: text}
	}
	return Cell{text: text}, nil
}

// Text returns the cell's raw text.
func (c Cell) Text() string { return c.text }

// IsEmpty reports whether the cell is blank.
func (c Cell) IsEmpty() bool { return c.text == "" }

func (c Cell) String() string { return c.text }

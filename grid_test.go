package graliffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	g := NewGrid()

	t.Run("reads blank before any write", func(t *testing.T) {
		assert.True(t, g.Get(Pos(0, 0)).IsEmpty())
		assert.True(t, g.Get(Pos(63, 63)).IsEmpty())
		assert.Equal(t, 0, g.Len())
	})

	t.Run("stores and reads back", func(t *testing.T) {
		require.NoError(t, g.SetText(Pos(2, 3), "add"))
		assert.Equal(t, "add", g.Get(Pos(2, 3)).Text())
		assert.Equal(t, 1, g.Len())
	})

	t.Run("overflowing write leaves prior contents", func(t *testing.T) {
		err := g.SetText(Pos(2, 3), "long")
		assert.ErrorAs(t, err, &CellOverflowError{})
		assert.Equal(t, "add", g.Get(Pos(2, 3)).Text())
	})

	t.Run("blank write releases the slot", func(t *testing.T) {
		require.NoError(t, g.SetText(Pos(2, 3), ""))
		assert.True(t, g.Get(Pos(2, 3)).IsEmpty())
		assert.Equal(t, 0, g.Len())
	})

	t.Run("positions come out row major", func(t *testing.T) {
		require.NoError(t, g.SetText(Pos(1, 1), "b"))
		require.NoError(t, g.SetText(Pos(0, 1), "a"))
		require.NoError(t, g.SetText(Pos(5, 0), "c"))
		assert.Equal(t, []Position{Pos(5, 0), Pos(0, 1), Pos(1, 1)}, g.Positions())
	})
}

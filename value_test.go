package graliffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_encoding(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Value
		want string
	}{
		{"zero", NumberValue(0), "0"},
		{"number", NumberValue(42), "42"},
		{"widest number", NumberValue(999), "999"},
		{"true", BoolValue(true), "1"},
		{"false", BoolValue(false), "0"},
		{"position", PositionValue(Pos(0, 1)), "@AB"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.String())
			c, err := tc.v.cell()
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Text())
		})
	}

	t.Run("four digit number overflows a cell", func(t *testing.T) {
		_, err := NumberValue(1000).cell()
		var overflow CellOverflowError
		require.ErrorAs(t, err, &overflow)
		assert.Equal(t, "1000", overflow.Text)
	})
}

func TestValue_unwrap(t *testing.T) {
	n, ok := NumberValue(7).Number()
	require.True(t, ok)
	assert.Equal(t, uint32(7), n)
	_, ok = NumberValue(7).Bool()
	assert.False(t, ok)
	_, ok = NumberValue(7).Position()
	assert.False(t, ok)

	b, ok := BoolValue(true).Bool()
	require.True(t, ok)
	assert.True(t, b)

	p, ok := PositionValue(Pos(3, 4)).Position()
	require.True(t, ok)
	assert.Equal(t, Pos(3, 4), p)
}

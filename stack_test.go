package graliffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Run("pop of empty underflows", func(t *testing.T) {
		s := NewStack(0)
		_, err := s.Pop()
		assert.ErrorIs(t, err, ErrStackUnderflow)
	})

	t.Run("pops reverse pushes", func(t *testing.T) {
		s := NewStack(0)
		for i := uint32(1); i <= 5; i++ {
			require.NoError(t, s.Push(NumberValue(i)))
		}
		for i := uint32(5); i >= 1; i-- {
			v, err := s.Pop()
			require.NoError(t, err)
			n, ok := v.Number()
			require.True(t, ok)
			assert.Equal(t, i, n)
		}
		_, err := s.Pop()
		assert.ErrorIs(t, err, ErrStackUnderflow)
	})

	t.Run("peek does not consume", func(t *testing.T) {
		s := NewStack(0)
		require.NoError(t, s.Push(BoolValue(true)))
		v, ok := s.Peek()
		require.True(t, ok)
		assert.Equal(t, BoolValue(true), v)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("limit overflows", func(t *testing.T) {
		s := NewStack(2)
		require.NoError(t, s.Push(NumberValue(1)))
		require.NoError(t, s.Push(NumberValue(2)))
		assert.ErrorIs(t, s.Push(NumberValue(3)), ErrStackOverflow)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("values copies bottom to top", func(t *testing.T) {
		s := NewStack(0)
		require.NoError(t, s.Push(NumberValue(1)))
		require.NoError(t, s.Push(NumberValue(2)))
		vs := s.Values()
		assert.Equal(t, []Value{NumberValue(1), NumberValue(2)}, vs)
		vs[0] = NumberValue(9)
		got, _ := s.Pop()
		assert.Equal(t, NumberValue(2), got)
	})
}

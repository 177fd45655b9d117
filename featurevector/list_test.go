package featurevector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	l, err := NewList(New(5, []float64{1}), New(2, []float64{2}), New(9, []float64{3}))
	require.NoError(t, err)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []uint32{2, 5, 9}, l.IDs())
	assert.True(t, l.Contains(9))
	assert.False(t, l.Contains(1))

	v, ok := l.Get(2)
	require.True(t, ok)
	assert.Equal(t, []float64{2}, v.Elements())

	first, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), first.ID())

	_, err = l.At(3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	t.Run("Duplicate", func(t *testing.T) {
		assert.ErrorIs(t, l.Add(New(5, nil)), ErrDuplicateID)
		_, err := NewList(New(1, nil), New(1, nil))
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.ErrorIs(t, l.Add(nil), ErrNilVector)
		assert.Equal(t, 3, l.Len())
		_, err := NewList(New(1, nil), nil)
		assert.ErrorIs(t, err, ErrNilVector)
	})

	t.Run("Remove", func(t *testing.T) {
		assert.True(t, l.Remove(2))
		assert.False(t, l.Remove(2))
		assert.Equal(t, []uint32{5, 9}, l.IDs())

		v, ok := l.Get(9)
		require.True(t, ok)
		assert.Equal(t, uint32(9), v.ID())

		var order []uint32
		for _, v := range l.All() {
			order = append(order, v.ID())
		}
		assert.Equal(t, []uint32{5, 9}, order)
	})

	t.Run("Bitmap", func(t *testing.T) {
		bm := l.Bitmap()
		bm.Add(100)
		assert.False(t, l.Contains(100))
		assert.Len(t, l.Vectors(), l.Len())
	})
}

package sparsego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFloat64(t *testing.T, rows, cols int, entries map[[2]int]float64) Matrix[float64] {
	t.Helper()

	m, err := New[float64](rows, cols)
	require.NoError(t, err)
	for k, v := range entries {
		_, err := m.Set(k[0], k[1], v)
		require.NoError(t, err)
	}
	return m
}

func TestEqual(t *testing.T) {
	entries := map[[2]int]float64{
		{0, 0}: 1, {1, 1}: 2, {2, 2}: 3,
		{0, 2}: 5, {1, 0}: 7,
	}

	t.Run("Reflexive", func(t *testing.T) {
		m := buildFloat64(t, 3, 3, entries)
		eq, err := m.Equal(m)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("InsertionOrderIndependent", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, entries)

		// Same entries, inserted bottom row first.
		b, err := New[float64](3, 3)
		require.NoError(t, err)
		for _, e := range []struct {
			i, j int
			v    float64
		}{
			{2, 2, 3}, {1, 0, 7}, {1, 1, 2}, {0, 2, 5}, {0, 0, 1},
		} {
			_, err := b.Set(e.i, e.j, e.v)
			require.NoError(t, err)
		}

		eq, err := a.Equal(b)
		require.NoError(t, err)
		assert.True(t, eq)

		eq, err = b.Equal(a)
		require.NoError(t, err)
		assert.True(t, eq)

		v, err := a.At(0, 2)
		require.NoError(t, err)
		assert.Equal(t, 5.0, v)
		v, err = a.At(2, 0)
		require.NoError(t, err)
		assert.Zero(t, v)
	})

	t.Run("ExplicitZeroEqualsAbsent", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, map[[2]int]float64{{0, 1}: 0})
		b, err := New[float64](3, 3)
		require.NoError(t, err)

		require.Equal(t, 1, a.NNZ())
		require.Equal(t, 0, b.NNZ())

		eq, err := a.Equal(b)
		require.NoError(t, err)
		assert.True(t, eq, "a stored zero compares equal to a missing entry")

		eq, err = b.Equal(a)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("ValueMismatch", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, entries)
		b := buildFloat64(t, 3, 3, map[[2]int]float64{
			{0, 0}: 1, {1, 1}: 2, {2, 2}: 3,
			{0, 2}: 5, {1, 0}: 8,
		})
		eq, err := a.Equal(b)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("DiagonalMismatch", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, map[[2]int]float64{{1, 1}: 2})
		b, err := New[float64](3, 3)
		require.NoError(t, err)
		eq, err := a.Equal(b)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("StructureMismatch", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, map[[2]int]float64{{0, 1}: 4})
		b := buildFloat64(t, 3, 3, map[[2]int]float64{{0, 2}: 4})
		eq, err := a.Equal(b)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, nil)
		b := buildFloat64(t, 3, 4, nil)
		_, err := a.Equal(b)
		require.ErrorIs(t, err, ErrShapeMismatch)

		_, err = a.Equal(nil)
		require.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("AcrossIndexWidths", func(t *testing.T) {
		// The width is a storage detail: a wider container holding the
		// same entries compares equal.
		narrow := buildFloat64(t, 3, 3, entries)
		wide := newStorage[float64, uint32](3, 3, applyOptions(nil))
		for k, v := range entries {
			_, err := wide.Set(k[0], k[1], v)
			require.NoError(t, err)
		}

		eq, err := narrow.Equal(wide)
		require.NoError(t, err)
		assert.True(t, eq)

		eq, err = wide.Equal(narrow)
		require.NoError(t, err)
		assert.True(t, eq)
	})
}

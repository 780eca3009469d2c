package sparsego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	t.Run("Square", func(t *testing.T) {
		m := buildFloat64(t, 3, 3, map[[2]int]float64{
			{0, 0}: 1, {1, 1}: 2, {2, 2}: 3,
			{0, 2}: 5, {1, 0}: 7, {2, 1}: -4,
		})

		tr, err := m.Transpose()
		require.NoError(t, err)
		checkInvariants(t, tr)

		assert.Equal(t, 3, tr.Rows())
		assert.Equal(t, 3, tr.Cols())
		assert.Equal(t, m.NNZ(), tr.NNZ())

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want, err := m.At(i, j)
				require.NoError(t, err)
				got, err := tr.At(j, i)
				require.NoError(t, err)
				assert.Equal(t, want, got, "(%d,%d)", j, i)
			}
		}
	})

	t.Run("Rectangular", func(t *testing.T) {
		m := buildFloat64(t, 2, 5, map[[2]int]float64{
			{0, 0}: 1, {0, 3}: 2, {0, 4}: 3,
			{1, 1}: 4, {1, 2}: 5,
		})

		tr, err := m.Transpose()
		require.NoError(t, err)
		checkInvariants(t, tr)

		assert.Equal(t, 5, tr.Rows())
		assert.Equal(t, 2, tr.Cols())

		for i := 0; i < 2; i++ {
			for j := 0; j < 5; j++ {
				want, err := m.At(i, j)
				require.NoError(t, err)
				got, err := tr.At(j, i)
				require.NoError(t, err)
				assert.Equal(t, want, got, "(%d,%d)", j, i)
			}
		}
	})

	t.Run("DoubleTransposeRoundTrips", func(t *testing.T) {
		m := buildFloat64(t, 4, 3, map[[2]int]float64{
			{0, 1}: 1, {1, 0}: 2, {2, 2}: 3, {3, 0}: 4, {3, 2}: 5,
		})

		tr, err := m.Transpose()
		require.NoError(t, err)
		back, err := tr.Transpose()
		require.NoError(t, err)

		eq, err := back.Equal(m)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("Empty", func(t *testing.T) {
		m := buildFloat64(t, 3, 2, nil)
		tr, err := m.Transpose()
		require.NoError(t, err)
		checkInvariants(t, tr)
		assert.Equal(t, 0, tr.NNZ())
		assert.Equal(t, 2, tr.Rows())
		assert.Equal(t, 3, tr.Cols())
	})
}

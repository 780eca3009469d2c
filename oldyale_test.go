package sparsego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOldYale(t *testing.T) {
	t.Run("SplitsDiagonal", func(t *testing.T) {
		// Old-format 3x3 with the diagonal mixed into the rows:
		//
		//	[1 0 5]
		//	[7 2 0]
		//	[0 0 3]
		ia := []int{0, 2, 4, 5}
		ja := []int{0, 2, 0, 1, 2}
		a := []float64{1, 5, 7, 2, 3}

		m, err := FromOldYale[float64](3, 3, ia, ja, a)
		require.NoError(t, err)
		checkInvariants(t, m)

		assert.Equal(t, 2, m.NNZ(), "the three diagonal entries move to the prefix")
		assert.Equal(t, []float64{1, 2, 3}, m.Diagonal())

		want := buildFloat64(t, 3, 3, map[[2]int]float64{
			{0, 0}: 1, {1, 1}: 2, {2, 2}: 3, {0, 2}: 5, {1, 0}: 7,
		})
		eq, err := m.Equal(want)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("ConvertsElements", func(t *testing.T) {
		ia := []int{0, 1, 2}
		ja := []int{1, 0}
		a := []int32{4, -9}

		m, err := FromOldYale[float64](2, 2, ia, ja, a)
		require.NoError(t, err)

		v, err := m.At(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 4.0, v)
		v, err = m.At(1, 0)
		require.NoError(t, err)
		assert.Equal(t, -9.0, v)
	})

	t.Run("MissingDiagonalReadsZero", func(t *testing.T) {
		ia := []int{0, 1, 1}
		ja := []int{1}
		a := []float64{4}

		m, err := FromOldYale[float64](2, 2, ia, ja, a)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0}, m.Diagonal())
	})

	t.Run("RejectsMalformed", func(t *testing.T) {
		_, err := FromOldYale[float64, float64](0, 2, nil, nil, nil)
		require.ErrorIs(t, err, ErrInvalidShape)

		_, err = FromOldYale[float64](2, 2, []int{0, 1}, []int{0}, []float64{1})
		require.ErrorIs(t, err, ErrInvalidStructure, "short row pointer vector")

		_, err = FromOldYale[float64](2, 2, []int{1, 1, 1}, []int{0}, []float64{1})
		require.ErrorIs(t, err, ErrInvalidStructure, "first pointer must be zero")

		_, err = FromOldYale[float64](2, 2, []int{0, 2, 1}, []int{0, 1}, []float64{1, 2})
		require.ErrorIs(t, err, ErrInvalidStructure, "decreasing pointers")

		_, err = FromOldYale[float64](2, 2, []int{0, 2, 2}, []int{1, 0}, []float64{1, 2})
		require.ErrorIs(t, err, ErrInvalidStructure, "columns must ascend within a row")

		_, err = FromOldYale[float64](2, 2, []int{0, 1, 2}, []int{2, 0}, []float64{1, 2})
		require.ErrorIs(t, err, ErrInvalidStructure, "column outside the shape")

		_, err = FromOldYale[float64](2, 2, []int{0, 1, 3}, []int{1, 0}, []float64{1, 2})
		require.ErrorIs(t, err, ErrInvalidStructure, "pointers past the value vector")
	})
}

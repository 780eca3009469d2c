package sparsego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeStructure(t *testing.T) {
	t.Run("UnionOfStructures", func(t *testing.T) {
		a := buildFloat64(t, 4, 4, map[[2]int]float64{
			{0, 1}: 1, {0, 3}: 2, {2, 0}: 3,
		})
		b := buildFloat64(t, 4, 4, map[[2]int]float64{
			{0, 2}: 9, {2, 0}: 9, {3, 1}: 9,
		})

		out, err := a.MergeStructure(b)
		require.NoError(t, err)
		checkInvariants(t, out)

		assert.Equal(t, 5, out.NNZ(), "union of {01,03,20} and {02,20,31}")
		assert.Equal(t, []int{1, 2, 3, 0, 1}, out.ColumnIndices())

		// Template values survive; positions only b has read as zero.
		for _, e := range []struct {
			i, j int
			want float64
		}{
			{0, 1, 1}, {0, 3, 2}, {2, 0, 3}, {0, 2, 0}, {3, 1, 0},
		} {
			got, err := out.At(e.i, e.j)
			require.NoError(t, err)
			assert.Equal(t, e.want, got, "(%d,%d)", e.i, e.j)
		}
	})

	t.Run("OperandsUntouched", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, map[[2]int]float64{{0, 1}: 1})
		b := buildFloat64(t, 3, 3, map[[2]int]float64{{1, 2}: 2})

		_, err := a.MergeStructure(b)
		require.NoError(t, err)

		assert.Equal(t, 1, a.NNZ())
		assert.Equal(t, 1, b.NNZ())
	})

	t.Run("SelfMergeIsClone", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, map[[2]int]float64{{0, 1}: 1, {2, 0}: 2})

		out, err := a.MergeStructure(a)
		require.NoError(t, err)

		eq, err := out.Equal(a)
		require.NoError(t, err)
		assert.True(t, eq)
		assert.Equal(t, a.NNZ(), out.NNZ())

		// Deep copy: writes to the merge result do not leak back.
		_, err = out.Set(1, 2, 9)
		require.NoError(t, err)
		v, err := a.At(1, 2)
		require.NoError(t, err)
		assert.Zero(t, v)
	})

	t.Run("DisjointRows", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, map[[2]int]float64{{0, 1}: 1, {0, 2}: 2})
		b := buildFloat64(t, 3, 3, map[[2]int]float64{{2, 0}: 9, {2, 1}: 9})

		out, err := a.MergeStructure(b)
		require.NoError(t, err)
		checkInvariants(t, out)
		assert.Equal(t, 4, out.NNZ())
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		a := buildFloat64(t, 3, 3, nil)
		b := buildFloat64(t, 3, 4, nil)
		_, err := a.MergeStructure(b)
		require.ErrorIs(t, err, ErrShapeMismatch)

		_, err = a.MergeStructure(nil)
		require.ErrorIs(t, err, ErrShapeMismatch)
	})
}

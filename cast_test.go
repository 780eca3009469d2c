package sparsego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCast(t *testing.T) {
	t.Run("PreservesStructure", func(t *testing.T) {
		src := buildFloat64(t, 3, 3, map[[2]int]float64{
			{0, 0}: 1.9, {0, 2}: 2.1, {1, 0}: -3.7, {2, 2}: 4,
		})

		dst, err := Cast[int32](src)
		require.NoError(t, err)
		checkInvariants(t, dst)

		assert.Equal(t, src.NNZ(), dst.NNZ())
		assert.Equal(t, src.RowPointers(), dst.RowPointers())
		assert.Equal(t, src.ColumnIndices(), dst.ColumnIndices())
		assert.Equal(t, KindInt32, dst.Kind())
	})

	t.Run("TruncatesTowardZero", func(t *testing.T) {
		src := buildFloat64(t, 2, 2, map[[2]int]float64{{0, 1}: 2.9, {1, 0}: -2.9})

		dst, err := Cast[int32](src)
		require.NoError(t, err)

		v, err := dst.At(0, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(2), v)
		v, err = dst.At(1, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(-2), v)
	})

	t.Run("Int64KeepsPrecision", func(t *testing.T) {
		// 2^60+1 is not representable in float64; the integer route must
		// not go through it.
		const big = int64(1)<<60 + 1
		src, err := New[int64](2, 2)
		require.NoError(t, err)
		_, err = src.Set(0, 1, big)
		require.NoError(t, err)

		dst, err := Cast[int64](src)
		require.NoError(t, err)
		v, err := dst.At(0, 1)
		require.NoError(t, err)
		assert.Equal(t, big, v)
	})

	t.Run("WidensToComplex", func(t *testing.T) {
		src := buildFloat64(t, 2, 2, map[[2]int]float64{{0, 1}: 1.5})

		dst, err := Cast[complex128](src)
		require.NoError(t, err)
		v, err := dst.At(0, 1)
		require.NoError(t, err)
		assert.Equal(t, complex(1.5, 0), v)
	})

	t.Run("ComplexDropsImaginary", func(t *testing.T) {
		src, err := New[complex128](2, 2)
		require.NoError(t, err)
		_, err = src.Set(0, 1, complex(3, 4))
		require.NoError(t, err)

		dst, err := Cast[float64](src)
		require.NoError(t, err)
		v, err := dst.At(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 3.0, v)
	})
}

func TestClone(t *testing.T) {
	src := buildFloat64(t, 3, 3, map[[2]int]float64{{0, 1}: 1, {2, 0}: 2})

	cp := src.Clone()
	eq, err := cp.Equal(src)
	require.NoError(t, err)
	assert.True(t, eq)

	// No shared storage in either direction.
	_, err = cp.Set(1, 2, 9)
	require.NoError(t, err)
	v, err := src.At(1, 2)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = src.Set(0, 1, 5)
	require.NoError(t, err)
	v, err = cp.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint64(t *testing.T) {
	v, err := IntToUint64(42)
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)

	_, err = IntToUint64(-1)
	require.Error(t, err)
}

func TestUint64ToInt(t *testing.T) {
	v, err := Uint64ToInt(42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Uint64ToInt(math.MaxUint64)
	require.Error(t, err)
}

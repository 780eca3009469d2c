package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"none", "lz4", "zstd", "s2"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("gzip")
	assert.False(t, ok)
}

func TestCompressorsRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":          nil,
		"small":          []byte("hello"),
		"repetitive":     bytes.Repeat([]byte("abcd1234"), 4096),
		"incompressible": incompressible(64 * 1024),
	}

	for _, name := range []string{"none", "lz4", "zstd", "s2"} {
		c, _ := ByName(name)
		for label, data := range inputs {
			t.Run(name+"/"+label, func(t *testing.T) {
				packed, err := c.Compress(data)
				require.NoError(t, err)

				out, err := c.Decompress(packed, len(data))
				require.NoError(t, err)
				assert.Equal(t, len(data), len(out))
				assert.True(t, bytes.Equal(data, out))
			})
		}
	}
}

func TestDecompressSizeMismatch(t *testing.T) {
	data := bytes.Repeat([]byte("abcd1234"), 1024)

	for _, name := range []string{"none", "lz4", "zstd", "s2"} {
		t.Run(name, func(t *testing.T) {
			c, _ := ByName(name)
			packed, err := c.Compress(data)
			require.NoError(t, err)

			_, err = c.Decompress(packed, len(data)-1)
			require.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

// incompressible returns pseudorandom bytes from a small xorshift so the
// test stays deterministic.
func incompressible(n int) []byte {
	out := make([]byte, n)
	state := uint64(0x9e3779b97f4a7c15)
	for i := range out {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		out[i] = byte(state)
	}
	return out
}

package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU(t *testing.T) {
	ctx := context.Background()

	t.Run("GetSet", func(t *testing.T) {
		c := NewLRU(1024)
		key := Key{Path: "snap.yale", Block: 0}

		_, ok := c.Get(ctx, key)
		assert.False(t, ok)

		c.Set(ctx, key, []byte("block0"))
		got, ok := c.Get(ctx, key)
		require.True(t, ok)
		assert.Equal(t, []byte("block0"), got)

		hits, misses := c.Stats()
		assert.EqualValues(t, 1, hits)
		assert.EqualValues(t, 1, misses)
	})

	t.Run("EvictsLeastRecentlyUsed", func(t *testing.T) {
		c := NewLRU(20)
		for i := 0; i < 3; i++ {
			c.Set(ctx, Key{Path: "s", Block: uint64(i)}, make([]byte, 8))
		}

		// Blocks 1 and 2 fit; block 0 was evicted to make room.
		_, ok := c.Get(ctx, Key{Path: "s", Block: 0})
		assert.False(t, ok)
		_, ok = c.Get(ctx, Key{Path: "s", Block: 2})
		assert.True(t, ok)
		assert.LessOrEqual(t, c.Size(), int64(20))
	})

	t.Run("TouchKeepsEntryAlive", func(t *testing.T) {
		c := NewLRU(16)
		c.Set(ctx, Key{Path: "s", Block: 0}, make([]byte, 8))
		c.Set(ctx, Key{Path: "s", Block: 1}, make([]byte, 8))

		// Touch block 0 so block 1 becomes the eviction victim.
		_, ok := c.Get(ctx, Key{Path: "s", Block: 0})
		require.True(t, ok)

		c.Set(ctx, Key{Path: "s", Block: 2}, make([]byte, 8))
		_, ok = c.Get(ctx, Key{Path: "s", Block: 0})
		assert.True(t, ok)
		_, ok = c.Get(ctx, Key{Path: "s", Block: 1})
		assert.False(t, ok)
	})

	t.Run("OversizedValueNotCached", func(t *testing.T) {
		c := NewLRU(4)
		c.Set(ctx, Key{Path: "s", Block: 0}, make([]byte, 8))
		_, ok := c.Get(ctx, Key{Path: "s", Block: 0})
		assert.False(t, ok)
	})

	t.Run("Invalidate", func(t *testing.T) {
		c := NewLRU(1024)
		for i := 0; i < 4; i++ {
			c.Set(ctx, Key{Path: fmt.Sprintf("snap-%d", i%2), Block: uint64(i)}, []byte{1})
		}

		c.Invalidate(func(key Key) bool { return key.Path == "snap-0" })

		_, ok := c.Get(ctx, Key{Path: "snap-0", Block: 0})
		assert.False(t, ok)
		_, ok = c.Get(ctx, Key{Path: "snap-1", Block: 1})
		assert.True(t, ok)
	})
}

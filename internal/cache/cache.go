// Package cache provides a byte-oriented block cache used by the
// caching blob store to keep hot snapshot regions in memory.
package cache

import "context"

// Key identifies one block of one blob. Blobs are immutable, so a key
// never needs a version component.
type Key struct {
	// Path identifies the source blob.
	Path string
	// Block is the block index within the blob.
	Block uint64
}

// BlockCache is a cache for immutable byte blocks. Returned slices must
// be treated as read-only.
type BlockCache interface {
	// Get returns a cached block; ok is false on a miss.
	Get(ctx context.Context, key Key) (b []byte, ok bool)
	// Set caches a block. The caller must not mutate b afterwards.
	Set(ctx context.Context, key Key, b []byte)
	// Invalidate removes entries matching the predicate.
	Invalidate(predicate func(key Key) bool)
	// Stats returns hit and miss counts.
	Stats() (hits, misses int64)
}

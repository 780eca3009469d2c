package blobstore

import (
	"context"
	"errors"
	"io"

	"github.com/hupe1980/sparsego/internal/cache"
	"golang.org/x/sync/errgroup"
)

// CachingStore wraps a BlobStore and serves reads from a block cache.
// Snapshots are immutable, so cached blocks only go stale when a name is
// overwritten or deleted; both paths invalidate.
type CachingStore struct {
	inner     BlobStore
	cache     cache.BlockCache
	blockSize int64
}

// NewCachingStore creates a CachingStore. blockSize defaults to 4KB
// when <= 0.
func NewCachingStore(inner BlobStore, blockCache cache.BlockCache, blockSize int64) *CachingStore {
	if blockSize <= 0 {
		blockSize = 4096
	}
	return &CachingStore{
		inner:     inner,
		cache:     blockCache,
		blockSize: blockSize,
	}
}

func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &cachingBlob{
		inner:     b,
		cache:     s.cache,
		name:      name,
		blockSize: s.blockSize,
	}, nil
}

// Create passes through; writes are not cached.
func (s *CachingStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	s.invalidate(name)
	return s.inner.Create(ctx, name)
}

func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

func (s *CachingStore) invalidate(name string) {
	s.cache.Invalidate(func(key cache.Key) bool {
		return key.Path == name
	})
}

type cachingBlob struct {
	inner     Blob
	cache     cache.BlockCache
	name      string
	blockSize int64
}

func (b *cachingBlob) Size() int64 {
	return b.inner.Size()
}

func (b *cachingBlob) Close() error {
	return b.inner.Close()
}

func (b *cachingBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	startBlock := off / b.blockSize
	endBlock := (off + int64(len(p)) - 1) / b.blockSize
	if err := b.fillCache(ctx, startBlock, endBlock); err != nil {
		return 0, err
	}

	total := 0
	for blk := startBlock; blk <= endBlock; blk++ {
		blkStart := blk * b.blockSize

		// Intersection of this block with the requested range.
		lo := max(blkStart, off)
		hi := min(blkStart+b.blockSize, off+int64(len(p)))
		if hi <= lo {
			continue
		}

		data, err := b.fetchBlock(ctx, blk)
		if err != nil {
			return total, err
		}

		src := lo - blkStart
		if src >= int64(len(data)) {
			// Request reaches past the end of the blob.
			break
		}
		n := copy(p[lo-off:hi-off], data[src:])
		total += n
	}
	if int64(total) < int64(len(p)) {
		return total, io.EOF
	}
	return total, nil
}

func (b *cachingBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	return io.NopCloser(&sectionReader{ctx: ctx, blob: b, off: off, limit: off + length}), nil
}

// fillCache loads the missing blocks of [startBlock, endBlock] into the
// cache, coalescing contiguous misses into single backend reads and
// running the runs in parallel.
func (b *cachingBlob) fillCache(ctx context.Context, startBlock, endBlock int64) error {
	type run struct{ start, count int64 }
	var missing []run

	cur := run{start: -1}
	for blk := startBlock; blk <= endBlock; blk++ {
		key := cache.Key{Path: b.name, Block: uint64(blk)}
		if _, ok := b.cache.Get(ctx, key); ok {
			if cur.start != -1 {
				missing = append(missing, cur)
				cur = run{start: -1}
			}
			continue
		}
		if cur.start == -1 {
			cur = run{start: blk, count: 1}
		} else {
			cur.count++
		}
	}
	if cur.start != -1 {
		missing = append(missing, cur)
	}
	if len(missing) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(16)
	for _, r := range missing {
		r := r
		g.Go(func() error {
			byteStart := r.start * b.blockSize
			byteSize := r.count * b.blockSize

			size := b.Size()
			if byteStart >= size {
				return nil
			}
			byteSize = min(byteSize, size-byteStart)

			buf := make([]byte, byteSize)
			n, err := b.inner.ReadAt(gctx, buf, byteStart)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			got := buf[:n]

			for i := int64(0); i < r.count; i++ {
				lo := i * b.blockSize
				if lo >= int64(len(got)) {
					break
				}
				hi := min(lo+b.blockSize, int64(len(got)))

				// Copy each block out so the cache does not pin the run
				// buffer.
				block := make([]byte, hi-lo)
				copy(block, got[lo:hi])
				b.cache.Set(gctx, cache.Key{Path: b.name, Block: uint64(r.start + i)}, block)
			}
			return nil
		})
	}
	return g.Wait()
}

func (b *cachingBlob) fetchBlock(ctx context.Context, blk int64) ([]byte, error) {
	key := cache.Key{Path: b.name, Block: uint64(blk)}
	if data, ok := b.cache.Get(ctx, key); ok {
		return data, nil
	}

	buf := make([]byte, b.blockSize)
	n, err := b.inner.ReadAt(ctx, buf, blk*b.blockSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	data := buf[:n]
	if n > 0 {
		b.cache.Set(ctx, key, data)
	}
	return data, nil
}

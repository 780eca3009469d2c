package codec

import (
	"bytes"
	"context"
	"io"

	"github.com/hupe1980/sparsego"
	"github.com/hupe1980/sparsego/blobstore"
)

// Save streams a snapshot of m into the store under name. The blob
// becomes visible only after the snapshot is written completely.
func Save[V sparsego.Number](ctx context.Context, store blobstore.BlobStore, name string, m sparsego.Matrix[V], optFns ...Option) error {
	wb, err := store.Create(ctx, name)
	if err != nil {
		return err
	}
	if err := Encode(wb, m, optFns...); err != nil {
		_ = wb.Close()
		return err
	}
	return wb.Close()
}

// Load reads a snapshot from the store. Memory-mapped backends are
// decoded in place without copying the blob.
func Load[V sparsego.Number](ctx context.Context, store blobstore.BlobStore, name string, optFns ...sparsego.Option) (sparsego.Matrix[V], error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	if mappable, ok := blob.(blobstore.Mappable); ok {
		data, err := mappable.Bytes()
		if err == nil {
			return Decode[V](bytes.NewReader(data), optFns...)
		}
		// fall through to ranged reads
	}

	rc, err := blob.ReadRange(ctx, 0, blob.Size())
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return Decode[V](bytes.NewReader(data), optFns...)
}

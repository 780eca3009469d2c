package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// BlobStore stores immutable data blobs under flat string names.
type BlobStore interface {
	// Open opens an existing blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create creates a blob for streaming writes. The blob becomes
	// visible when the returned handle is closed without error.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a complete blob atomically, replacing any previous
	// content under the same name.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a stored blob.
type Blob interface {
	// ReadAt reads len(p) bytes starting at offset off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader over [off, off+length), clamped to the
	// blob size.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	// Size returns the blob length in bytes.
	Size() int64
	// Close releases the handle.
	Close() error
}

// WritableBlob is a streaming write handle returned by Create.
type WritableBlob interface {
	io.Writer
	// Sync flushes written data to stable storage where the backend
	// supports it; object stores commit on Close instead.
	Sync() error
	// Close finalizes the blob. Content is not visible until Close
	// returns nil.
	Close() error
}

// Mappable is an optional Blob interface for zero-copy access to the
// underlying bytes. The slice is valid until the blob is closed.
type Mappable interface {
	Bytes() ([]byte, error)
}

// sectionReader adapts a Blob to io.Reader over a byte range. Used by
// implementations whose backend only offers ReadAt.
type sectionReader struct {
	ctx   context.Context
	blob  Blob
	off   int64
	limit int64
}

func (r *sectionReader) Read(p []byte) (int, error) {
	if r.off >= r.limit {
		return 0, io.EOF
	}
	if remaining := r.limit - r.off; int64(len(p)) > remaining {
		p = p[:remaining]
	}
	n, err := r.blob.ReadAt(r.ctx, p, r.off)
	r.off += int64(n)
	return n, err
}

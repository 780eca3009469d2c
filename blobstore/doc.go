// Package blobstore abstracts where matrix snapshots live.
//
// A snapshot is written once and then only read, so the interface is
// built around immutable blobs: atomic Put, streaming Create, and
// random-access reads.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with memory-mapped reads
//   - MemoryStore: in-memory store for tests
//   - CachingStore: block-level read cache around another store
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// Implementations must be safe for concurrent use.
package blobstore

// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Snapshots map naturally onto S3 objects: they are written once,
// immutable afterwards, and read either whole or via ranged GETs.
// Uploads stream through multipart uploads with CRC32C integrity
// checks.
package s3

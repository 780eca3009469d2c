// Package codec serializes matrices to a self-describing binary
// snapshot format.
//
// A snapshot is a fixed-size header followed by one payload section.
// The header records the element kind, the index width, the shape, the
// compression tag and a CRC32 of the stored payload; the payload holds
// the row pointers, column indices, diagonal and off-diagonal values as
// little-endian slabs, optionally compressed with zstd, s2 or lz4.
//
// The compression tag in the header is a compatibility boundary: bytes
// written with a codec this package does not know cannot be decoded.
package codec

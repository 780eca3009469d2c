package codec

import (
	"errors"
	"fmt"
)

const (
	// magicNumber identifies snapshot files (ASCII "SPY0").
	magicNumber = 0x53505930
	// version is the current snapshot format version (v1.0.0).
	version = 0x00010000
	// headerSize is the encoded size of fileHeader.
	headerSize = 64
)

var (
	// ErrInvalidMagic is returned when the input is not a snapshot.
	ErrInvalidMagic = errors.New("codec: invalid magic number")
	// ErrInvalidVersion is returned for snapshots written by an
	// incompatible format version.
	ErrInvalidVersion = errors.New("codec: unsupported version")
	// ErrUnknownCompression is returned when the header names a
	// compression tag this build does not know.
	ErrUnknownCompression = errors.New("codec: unknown compression")
	// ErrCorrupt is returned when the payload disagrees with the header.
	ErrCorrupt = errors.New("codec: corrupt snapshot")
)

// fileHeader is the fixed 64-byte header at the start of every
// snapshot. The index width is informational: decoding re-derives it
// from the shape.
type fileHeader struct {
	Magic       uint32
	Version     uint32
	Kind        uint8 // element kind tag
	IndexBits   uint8
	Compression uint8
	_           [5]byte
	Rows        uint64
	Cols        uint64
	NNZ         uint64
	RawSize     uint64 // payload bytes before compression
	PayloadSize uint64 // payload bytes as stored
	Checksum    uint32 // CRC32 (IEEE) of the stored payload
	_           [4]byte
}

// ChecksumMismatchError is returned when the stored payload fails CRC
// verification.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("codec: checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

func (e *ChecksumMismatchError) Is(target error) bool {
	return target == ErrCorrupt
}

package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	compressionNone uint8 = 0
	compressionLZ4  uint8 = 1
	compressionZstd uint8 = 2
	compressionS2   uint8 = 3
)

// Compressor compresses whole snapshot payloads. Implementations are
// stateless and safe for concurrent use.
type Compressor interface {
	// Name returns the stable name used in configuration.
	Name() string
	// Compress returns the stored form of data.
	Compress(data []byte) ([]byte, error)
	// Decompress reverses Compress. rawSize is the expected output
	// length, taken from the snapshot header.
	Decompress(data []byte, rawSize int) ([]byte, error)

	tag() uint8
}

// ByName returns a built-in compressor by its stable name: "none",
// "lz4", "zstd" or "s2".
func ByName(name string) (Compressor, bool) {
	switch name {
	case "none":
		return None{}, true
	case "lz4":
		return LZ4{}, true
	case "zstd":
		return Zstd{}, true
	case "s2":
		return S2{}, true
	default:
		return nil, false
	}
}

func byTag(tag uint8) (Compressor, bool) {
	switch tag {
	case compressionNone:
		return None{}, true
	case compressionLZ4:
		return LZ4{}, true
	case compressionZstd:
		return Zstd{}, true
	case compressionS2:
		return S2{}, true
	default:
		return nil, false
	}
}

// None stores the payload verbatim.
type None struct{}

func (None) Name() string { return "none" }
func (None) tag() uint8   { return compressionNone }

func (None) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (None) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) != rawSize {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrCorrupt, len(data), rawSize)
	}
	return data, nil
}

// zstd encoder/decoder pools: construction is expensive, snapshots are
// frequent.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Zstd trades a little speed for the best ratio of the built-ins. Good
// default for snapshots that travel to object storage.
type Zstd struct{}

func (Zstd) Name() string { return "zstd" }
func (Zstd) tag() uint8   { return compressionZstd }

func (Zstd) Compress(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, nil), nil
}

func (Zstd) Decompress(data []byte, rawSize int) ([]byte, error) {
	dec := getZstdDecoder()
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, make([]byte, 0, rawSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(out) != rawSize {
		return nil, fmt.Errorf("%w: decompressed to %d bytes, header says %d", ErrCorrupt, len(out), rawSize)
	}
	return out, nil
}

// S2 is the fastest built-in; use it when snapshot latency matters more
// than size.
type S2 struct{}

func (S2) Name() string { return "s2" }
func (S2) tag() uint8   { return compressionS2 }

func (S2) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (S2) Decompress(data []byte, rawSize int) ([]byte, error) {
	out, err := s2.Decode(make([]byte, 0, rawSize), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(out) != rawSize {
		return nil, fmt.Errorf("%w: decompressed to %d bytes, header says %d", ErrCorrupt, len(out), rawSize)
	}
	return out, nil
}

// LZ4 block compression; middle ground between S2 and Zstd.
type LZ4 struct{}

func (LZ4) Name() string { return "lz4" }
func (LZ4) tag() uint8   { return compressionLZ4 }

func (LZ4) Compress(data []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, buf, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible: lz4 refuses rather than expanding. Store raw
		// with a one-byte marker so Decompress can tell the cases apart.
		out := make([]byte, 1+len(data))
		out[0] = 0
		copy(out[1:], data)
		return out, nil
	}
	out := make([]byte, 1+n)
	out[0] = 1
	copy(out[1:], buf[:n])
	return out, nil
}

func (LZ4) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		if rawSize == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: empty lz4 payload", ErrCorrupt)
	}
	marker, data := data[0], data[1:]
	if marker == 0 {
		if len(data) != rawSize {
			return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrCorrupt, len(data), rawSize)
		}
		return data, nil
	}

	out := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(data, out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if n != rawSize {
		return nil, fmt.Errorf("%w: decompressed to %d bytes, header says %d", ErrCorrupt, n, rawSize)
	}
	return out, nil
}

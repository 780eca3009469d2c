package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/sparsego"
	"github.com/hupe1980/sparsego/internal/conv"
)

type options struct {
	compressor Compressor
}

// Option configures encoding.
type Option func(*options)

// WithCompressor selects the payload compressor. The default stores the
// payload uncompressed.
func WithCompressor(c Compressor) Option {
	return func(o *options) { o.compressor = c }
}

func applyOptions(optFns []Option) options {
	o := options{compressor: None{}}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Encode writes m to w as a snapshot.
func Encode[V sparsego.Number](w io.Writer, m sparsego.Matrix[V], optFns ...Option) error {
	o := applyOptions(optFns)
	c := m.Components()

	raw, err := encodePayload(c)
	if err != nil {
		return err
	}
	payload, err := o.compressor.Compress(raw)
	if err != nil {
		return err
	}

	nnz, err := conv.IntToUint64(len(c.ColumnIndices))
	if err != nil {
		return err
	}
	header := fileHeader{
		Magic:       magicNumber,
		Version:     version,
		Kind:        uint8(m.Kind()),
		IndexBits:   uint8(m.IndexBits()),
		Compression: o.compressor.tag(),
		Rows:        uint64(c.Rows),
		Cols:        uint64(c.Cols),
		NNZ:         nnz,
		RawSize:     uint64(len(raw)),
		PayloadSize: uint64(len(payload)),
		Checksum:    crc32.ChecksumIEEE(payload),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Decode reads a snapshot and reconstructs the matrix. The snapshot's
// element kind must match V; use a matching type parameter or Cast
// after loading a matrix of the stored kind.
func Decode[V sparsego.Number](r io.Reader, optFns ...sparsego.Option) (sparsego.Matrix[V], error) {
	hdr := make([]byte, headerSize)
	n, readErr := io.ReadFull(r, hdr)

	// Check the magic before reporting a short read: input that is not a
	// snapshot at all should say so, not "unexpected EOF".
	if n >= 4 {
		if magic := binary.LittleEndian.Uint32(hdr); magic != magicNumber {
			return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, magic)
		}
	}
	if readErr != nil {
		return nil, readErr
	}

	var header fileHeader
	if err := binary.Read(bytes.NewReader(hdr), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Version != version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	if want := sparsego.KindOf[V](); sparsego.ElemKind(header.Kind) != want {
		return nil, &sparsego.ErrElemKindMismatch{
			Expected: want,
			Actual:   sparsego.ElemKind(header.Kind),
		}
	}

	payloadSize, err := conv.Uint64ToInt(header.PayloadSize)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	if actual := crc32.ChecksumIEEE(payload); actual != header.Checksum {
		return nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: actual}
	}

	compressor, ok := byTag(header.Compression)
	if !ok {
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownCompression, header.Compression)
	}
	rawSize, err := conv.Uint64ToInt(header.RawSize)
	if err != nil {
		return nil, err
	}
	raw, err := compressor.Decompress(payload, rawSize)
	if err != nil {
		return nil, err
	}

	c, err := decodePayload[V](header, raw)
	if err != nil {
		return nil, err
	}
	return sparsego.FromComponents(c, optFns...)
}

// encodePayload lays the components out as little-endian slabs: row
// pointers, column indices, diagonal, off-diagonal values.
func encodePayload[V sparsego.Number](c sparsego.Components[V]) ([]byte, error) {
	var buf bytes.Buffer

	rp := make([]uint64, len(c.RowPointers))
	for i, v := range c.RowPointers {
		u, err := conv.IntToUint64(v)
		if err != nil {
			return nil, err
		}
		rp[i] = u
	}
	ci := make([]uint64, len(c.ColumnIndices))
	for i, v := range c.ColumnIndices {
		u, err := conv.IntToUint64(v)
		if err != nil {
			return nil, err
		}
		ci[i] = u
	}

	for _, slab := range []any{rp, ci, c.Diagonal, c.Values} {
		if err := binary.Write(&buf, binary.LittleEndian, slab); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decodePayload[V sparsego.Number](header fileHeader, raw []byte) (sparsego.Components[V], error) {
	rows, err := conv.Uint64ToInt(header.Rows)
	if err != nil {
		return sparsego.Components[V]{}, err
	}
	cols, err := conv.Uint64ToInt(header.Cols)
	if err != nil {
		return sparsego.Components[V]{}, err
	}
	nnz, err := conv.Uint64ToInt(header.NNZ)
	if err != nil {
		return sparsego.Components[V]{}, err
	}
	if rows < 0 || cols < 0 || nnz < 0 {
		return sparsego.Components[V]{}, fmt.Errorf("%w: negative extents", ErrCorrupt)
	}

	r := bytes.NewReader(raw)
	rp := make([]uint64, rows+1)
	ci := make([]uint64, nnz)
	diag := make([]V, rows)
	vals := make([]V, nnz)
	for _, slab := range []any{rp, ci, diag, vals} {
		if err := binary.Read(r, binary.LittleEndian, slab); err != nil {
			return sparsego.Components[V]{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	if r.Len() != 0 {
		return sparsego.Components[V]{}, fmt.Errorf("%w: %d trailing payload bytes", ErrCorrupt, r.Len())
	}

	c := sparsego.Components[V]{
		Rows:          rows,
		Cols:          cols,
		RowPointers:   make([]int, len(rp)),
		ColumnIndices: make([]int, len(ci)),
		Diagonal:      diag,
		Values:        vals,
	}
	for i, v := range rp {
		n, err := conv.Uint64ToInt(v)
		if err != nil {
			return sparsego.Components[V]{}, err
		}
		c.RowPointers[i] = n
	}
	for i, v := range ci {
		n, err := conv.Uint64ToInt(v)
		if err != nil {
			return sparsego.Components[V]{}, err
		}
		c.ColumnIndices[i] = n
	}
	return c, nil
}

// SaveToFile writes m to filename atomically: the snapshot lands in a
// temp file in the same directory and is renamed into place after a
// successful sync.
func SaveToFile[V sparsego.Number](filename string, m sparsego.Matrix[V], optFns ...Option) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()
	_ = tmp.Chmod(0o644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := Encode(buf, m, optFns...); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}
	committed = true

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}

// LoadFromFile reads a snapshot written by SaveToFile.
func LoadFromFile[V sparsego.Number](filename string, optFns ...sparsego.Option) (sparsego.Matrix[V], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode[V](bufio.NewReaderSize(f, 256*1024), optFns...)
}

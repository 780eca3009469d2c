package sparsego

import (
	"fmt"
	"math"
	"math/bits"
)

// Number is the sealed set of element representations a Matrix can
// store. The set is exact (no ~approximations): element kinds are tags,
// and conversions between them are part of the storage contract.
//
// The original storage engine additionally supported arbitrary-precision
// rationals and host-language objects; those have no idiomatic Go
// counterpart in a value-typed container and are out of scope.
type Number interface {
	uint8 | int8 | int16 | int32 | int64 |
		float32 | float64 | complex64 | complex128
}

// Index is the sealed set of unsigned widths used for the IJA vector.
// The width is picked once at construction from the shape and is fixed
// for the lifetime of the instance.
type Index interface {
	uint8 | uint16 | uint32 | uint64
}

// ElemKind tags an element representation for snapshots and diagnostics.
type ElemKind uint8

const (
	KindInvalid ElemKind = iota
	KindUint8
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

var elemKindNames = map[ElemKind]string{
	KindInvalid:    "invalid",
	KindUint8:      "uint8",
	KindInt8:       "int8",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindComplex64:  "complex64",
	KindComplex128: "complex128",
}

func (k ElemKind) String() string {
	if name, ok := elemKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ElemKind(%d)", uint8(k))
}

// ElemSize returns the storage footprint of one element in bytes.
func (k ElemKind) ElemSize() int {
	switch k {
	case KindUint8, KindInt8:
		return 1
	case KindInt16:
		return 2
	case KindInt32, KindFloat32:
		return 4
	case KindInt64, KindFloat64, KindComplex64:
		return 8
	case KindComplex128:
		return 16
	default:
		return 0
	}
}

// KindOf reports the ElemKind of the type parameter V.
func KindOf[V Number]() ElemKind {
	var zero V
	switch any(zero).(type) {
	case uint8:
		return KindUint8
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case complex64:
		return KindComplex64
	case complex128:
		return KindComplex128
	default:
		return KindInvalid
	}
}

// SetResult reports whether a Set overwrote an existing entry or inserted
// a new one. Callers that batch inserts rely on the distinction to reason
// about whether row-header offsets shifted.
type SetResult uint8

const (
	// Replaced means the entry already existed (or was the diagonal slot)
	// and only its value changed; no structure moved.
	Replaced SetResult = iota
	// Inserted means a new off-diagonal entry was created and every row
	// header after the target row shifted by one.
	Inserted
)

func (r SetResult) String() string {
	switch r {
	case Replaced:
		return "replaced"
	case Inserted:
		return "inserted"
	default:
		return fmt.Sprintf("SetResult(%d)", uint8(r))
	}
}

// Matrix is a two-dimensional sparse matrix in new-Yale storage.
//
// Implementations are created by New, FromOldYale, FromComponents or by
// operations on an existing Matrix; the concrete container is sealed to
// this package so the index width stays an internal detail.
type Matrix[V Number] interface {
	// Rows returns the number of matrix rows.
	Rows() int
	// Cols returns the number of matrix columns.
	Cols() int
	// NNZ returns the number of stored off-diagonal entries.
	NNZ() int
	// Size returns the logically occupied prefix length of the backing
	// arrays: NNZ() + Rows() + 1.
	Size() int
	// Capacity returns the allocated length of the backing arrays.
	Capacity() int
	// IndexBits returns the width of the index representation (8..64).
	IndexBits() int
	// Kind returns the element kind tag.
	Kind() ElemKind

	// At returns the element at (row, col). Structurally absent entries
	// read as zero. At never exposes internal storage.
	At(row, col int) (V, error)
	// Set stores v at (row, col), reporting whether an existing entry
	// was replaced or a new one inserted. Setting an off-diagonal entry
	// may grow the backing arrays; ErrCapacityExceeded is returned when
	// the matrix already holds every representable entry.
	Set(row, col int, v V) (SetResult, error)
	// InitEmpty resets the matrix to all zeros without shrinking the
	// backing arrays.
	InitEmpty()

	// Equal reports whether both matrices hold the same values, treating
	// structural absence as zero. Operands must share a shape; index
	// widths may differ. For element-type mismatches, Cast first.
	Equal(other Matrix[V]) (bool, error)
	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Matrix[V]
	// Transpose returns a new matrix with swapped extents.
	Transpose() (Matrix[V], error)
	// Mul returns the sparse matrix product receiver × other.
	Mul(other Matrix[V]) (Matrix[V], error)
	// MergeStructure returns a new matrix whose nonzero structure is the
	// union of both operands', with the receiver's values and zero-valued
	// placeholders where only other has an entry. Merging a matrix with
	// itself is a structural no-op and degenerates to Clone.
	MergeStructure(other Matrix[V]) (Matrix[V], error)
	// Slice is not supported by Yale storage and returns
	// ErrNotImplemented.
	Slice(fromRow, fromCol, rows, cols int) (Matrix[V], error)

	// Diagonal returns a copy of the always-materialized diagonal.
	Diagonal() []V
	// LU returns a copy of the stored off-diagonal values in layout
	// order.
	LU() []V
	// RowPointers returns a copy of the IA region: for each row i, the
	// half-open range [RowPointers()[i], RowPointers()[i+1]) of offsets
	// into the backing arrays holding that row's off-diagonal entries.
	// The first pointer always equals Rows()+1.
	RowPointers() []int
	// ColumnIndices returns a copy of the JA region: the column index
	// for each stored off-diagonal entry, in layout order.
	ColumnIndices() []int
	// Components returns a full structural copy suitable for exact
	// reconstruction via FromComponents.
	Components() Components[V]

	// sealed structural view used by cross-width operations
	rowBounds(i int) (lo, hi int)
	colAt(p int) int
	valAt(p int) V
	diagAt(i int) V
	loadStructure(ia, ja []int) error
	setDiagVal(i int, v V)
	setLUVal(p int, v V)
}

// Components is the neutral, width-independent form of a matrix used for
// snapshots and exact reconstruction.
type Components[V Number] struct {
	Rows          int
	Cols          int
	RowPointers   []int // len Rows+1, absolute offsets, first == Rows+1
	ColumnIndices []int // len == NNZ
	Diagonal      []V   // len Rows
	Values        []V   // off-diagonal values, len == NNZ
}

// New creates an empty rows×cols matrix. The index width is chosen from
// the shape and fixed for the matrix lifetime.
func New[V Number](rows, cols int, optFns ...Option) (Matrix[V], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	return newMatrix[V](rows, cols, applyOptions(optFns)), nil
}

// newMatrix dispatches on the index width required by the shape. The
// width must hold every value the IJA vector stores: column indices and
// row-start offsets up to the maximum occupiable size.
func newMatrix[V Number](rows, cols int, o options) Matrix[V] {
	switch fit := maxCapacityFor(rows, cols); {
	case fit <= math.MaxUint8:
		return newStorage[V, uint8](rows, cols, o)
	case fit <= math.MaxUint16:
		return newStorage[V, uint16](rows, cols, o)
	case fit <= math.MaxUint32:
		return newStorage[V, uint32](rows, cols, o)
	default:
		return newStorage[V, uint64](rows, cols, o)
	}
}

// maxCapacityFor returns the largest backing-array length a rows×cols
// matrix can need: the diagonal prefix, the sentinel, and one slot per
// off-diagonal cell. Never less than the empty layout plus one entry.
func maxCapacityFor(rows, cols int) uint64 {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 {
		return math.MaxUint64
	}
	diag := uint64(min(rows, cols))
	mc := lo - diag + uint64(rows) + 1
	if floor := uint64(rows) + 2; mc < floor {
		mc = floor
	}
	return mc
}

// Cast returns a structure-preserving copy of m with elements converted
// to Dst. Structure is type-independent and copied verbatim; values are
// raw-copied when Src and Dst coincide and converted element-wise
// otherwise. Conversions between representations follow Go conversion
// semantics (complex sources drop their imaginary part when narrowing to
// a real kind).
func Cast[Dst Number, Src Number](m Matrix[Src]) (Matrix[Dst], error) {
	switch s := m.(type) {
	case *storage[Src, uint8]:
		return castStorage[Dst](s), nil
	case *storage[Src, uint16]:
		return castStorage[Dst](s), nil
	case *storage[Src, uint32]:
		return castStorage[Dst](s), nil
	case *storage[Src, uint64]:
		return castStorage[Dst](s), nil
	default:
		return nil, fmt.Errorf("%w: unknown matrix implementation %T", ErrNotImplemented, m)
	}
}

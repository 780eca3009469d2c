package sparsego

// castStorage performs the structure-preserving copy behind Cast and
// Clone. The index prefix is copied verbatim (structure is
// type-independent); values are raw-copied when the element types
// coincide and converted element-wise otherwise. The unoccupied tail is
// left unspecified, as in the source.
func castStorage[Dst Number, Src Number, I Index](src *storage[Src, I]) *storage[Dst, I] {
	size := src.Size()
	dst := &storage[Dst, I]{
		rows: src.rows,
		cols: src.cols,
		a:    make([]Dst, len(src.a)),
		ija:  make([]I, len(src.ija)),
		ndnz: src.ndnz,
		opts: src.opts,
	}
	copy(dst.ija[:size], src.ija[:size])

	if same, ok := any(src.a).([]Dst); ok {
		copy(dst.a[:size], same[:size])
	} else {
		for p := 0; p < size; p++ {
			dst.a[p] = convertNumber[Dst](src.a[p])
		}
	}
	src.opts.metrics.RecordCopy()
	return dst
}

// Clone returns a deep copy sharing no storage with the receiver.
func (s *storage[V, I]) Clone() Matrix[V] {
	return castStorage[V](s)
}

// convertNumber converts between element kinds. Integer pairs convert
// through int64 so 64-bit values keep full precision; everything else
// routes through complex128, dropping the imaginary part when narrowing
// to a real kind.
func convertNumber[Dst Number, Src Number](v Src) Dst {
	if d, ok := any(v).(Dst); ok {
		return d
	}
	if i, ok := asInt64(v); ok {
		if d, ok := intAs[Dst](i); ok {
			return d
		}
	}
	return complexAs[Dst](asComplex128(v))
}

func asInt64[Src Number](v Src) (int64, bool) {
	switch x := any(v).(type) {
	case uint8:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	default:
		return 0, false
	}
}

func intAs[Dst Number](x int64) (Dst, bool) {
	var d Dst
	switch p := any(&d).(type) {
	case *uint8:
		*p = uint8(x)
	case *int8:
		*p = int8(x)
	case *int16:
		*p = int16(x)
	case *int32:
		*p = int32(x)
	case *int64:
		*p = x
	default:
		return d, false
	}
	return d, true
}

func asComplex128[Src Number](v Src) complex128 {
	switch x := any(v).(type) {
	case uint8:
		return complex(float64(x), 0)
	case int8:
		return complex(float64(x), 0)
	case int16:
		return complex(float64(x), 0)
	case int32:
		return complex(float64(x), 0)
	case int64:
		return complex(float64(x), 0)
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	default:
		return 0
	}
}

func complexAs[Dst Number](c complex128) Dst {
	var d Dst
	switch p := any(&d).(type) {
	case *uint8:
		*p = uint8(real(c))
	case *int8:
		*p = int8(real(c))
	case *int16:
		*p = int16(real(c))
	case *int32:
		*p = int32(real(c))
	case *int64:
		*p = int64(real(c))
	case *float32:
		*p = float32(real(c))
	case *float64:
		*p = real(c)
	case *complex64:
		*p = complex64(c)
	case *complex128:
		*p = c
	}
	return d
}

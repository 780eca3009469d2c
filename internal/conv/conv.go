// Package conv provides overflow-checked integer conversions used at
// the snapshot boundary, where on-disk uint64 counts meet in-memory int
// lengths.
package conv

import (
	"fmt"
	"math"
)

// IntToUint64 converts int to uint64, rejecting negatives.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int, rejecting values past MaxInt.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

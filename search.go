package sparsego

// binarySearch looks for key in the JA range [left, right] (inclusive
// bounds, absolute offsets) and returns its offset, or -1 when absent.
// Keys are unique within a row, so no tie-break is needed.
func (s *storage[V, I]) binarySearch(left, right, key int) int {
	for left <= right {
		mid := int(uint(left+right) >> 1)
		switch midJ := int(s.ija[mid]); {
		case midJ == key:
			return mid
		case midJ > key:
			right = mid - 1
		default:
			left = mid + 1
		}
	}
	return -1
}

// insertSearch is binarySearch for insertion points: it returns the
// offset where key sits, or where it must be inserted to keep the row
// sorted, along with whether it was found.
func (s *storage[V, I]) insertSearch(left, right, key int) (pos int, found bool) {
	for left <= right {
		mid := int(uint(left+right) >> 1)
		switch midJ := int(s.ija[mid]); {
		case midJ == key:
			return mid, true
		case midJ > key:
			right = mid - 1
		default:
			left = mid + 1
		}
	}
	return left, false
}

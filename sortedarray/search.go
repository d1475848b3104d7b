package sortedarray

import (
	"slices"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/optional"
)

// InsertionPoint returns the index of the first element that is greater than or
// equal to value, or Size() if there is none. Inserting value there keeps the
// sequence sorted and places it before any elements equal to it.
// An empty sequence always returns 0.
func (s *Sequence[T]) InsertionPoint(value T) int {
	lo, hi := 0, len(s.elements)

	// The answer is always within [lo, hi].
	for lo < hi {
		mid := lo + (hi-lo)/2

		if s.compare(s.elements[mid], value) >= 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// Add inserts value at its insertion point, shifting later elements right by one.
// Elements equal to value keep their relative order.
//
// If the comparison panics, the panic propagates and the sequence is unchanged.
func (s *Sequence[T]) Add(value T) {
	idx := s.InsertionPoint(value)

	s.elements = slices.Insert(s.elements, idx, value)

	// Both neighbours were probed by the search, so these hold even if the
	// elements were left unsorted by MapInPlace.
	if idx > 0 {
		assert.NotAfter(s.compare, s.elements[idx-1], value,
			"sortedarray: inserted %v after greater element %v at index %d", value, s.elements[idx-1], idx)
	}

	if idx+1 < len(s.elements) {
		assert.False(s.compare.Less(s.elements[idx+1], value),
			"sortedarray: inserted %v before smaller element %v at index %d", value, s.elements[idx+1], idx)
	}
}

// AddAll adds each value in order.
func (s *Sequence[T]) AddAll(values ...T) {
	for _, value := range values {
		s.Add(value)
	}
}

// IndexOf returns the index of an element equal to target, or None if there is none.
// When target occurs more than once, any one of its indices may be returned.
func (s *Sequence[T]) IndexOf(target T) optional.Value[int] {
	lo, hi := 0, len(s.elements)

	for lo < hi {
		mid := lo + (hi-lo)/2

		switch order := s.compare(s.elements[mid], target); {
		case order == 0:
			return optional.Some(mid)
		case order > 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}

	return optional.None[int]()
}

// Contains reports whether an element equal to target is present.
func (s *Sequence[T]) Contains(target T) bool {
	return s.IndexOf(target).NonEmpty()
}

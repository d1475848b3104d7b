package sortedarray

import (
	"iter"
	"slices"

	"github.com/amp-labs/amp-sorted/optional"
)

// Size returns the number of elements.
func (s *Sequence[T]) Size() int {
	return len(s.elements)
}

// Len is an alias for Size.
func (s *Sequence[T]) Len() int {
	return s.Size()
}

// Count is an alias for Size.
func (s *Sequence[T]) Count() int {
	return s.Size()
}

// At returns the element at index. Negative indices count back from the end, so -1
// is the last element. An index outside the sequence returns None.
func (s *Sequence[T]) At(index int) optional.Value[T] {
	if index < 0 {
		index += len(s.elements)
	}

	if index < 0 || index >= len(s.elements) {
		return optional.None[T]()
	}

	return optional.Some(s.elements[index])
}

// Slice returns a copy of the elements in the half-open range [start, end).
// Negative bounds count back from the end.
//
// The start bound decides whether a result exists at all: a start outside
// [0, Size()] returns None, while start == Size() returns an empty slice. The end
// bound is clipped to Size(), and an end before start yields an empty slice.
func (s *Sequence[T]) Slice(start, end int) optional.Value[[]T] {
	size := len(s.elements)

	if start < 0 {
		start += size
	}

	if start < 0 || start > size {
		return optional.None[[]T]()
	}

	if end < 0 {
		end += size
	}

	end = min(end, size)

	if end <= start {
		return optional.Some([]T{})
	}

	return optional.Some(slices.Clone(s.elements[start:end]))
}

// Entries returns a copy of all elements in ascending order.
func (s *Sequence[T]) Entries() []T {
	return slices.Clone(s.elements)
}

// Values returns an iterator over a copy of the elements present when Values was
// called. Later calls to Add or MapInPlace do not show through.
func (s *Sequence[T]) Values() iter.Seq[T] {
	snapshot := slices.Clone(s.elements)

	return func(yield func(T) bool) {
		for _, element := range snapshot {
			if !yield(element) {
				return
			}
		}
	}
}

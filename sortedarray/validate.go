package sortedarray

import (
	"errors"
	"fmt"
)

// ErrOutOfOrder is returned by Validate when an element sorts before its predecessor.
var ErrOutOfOrder = errors.New("elements out of order")

// Validate checks the ordering of every adjacent pair. It returns nil for a sorted
// sequence and an error wrapping ErrOutOfOrder otherwise. Only MapInPlace can leave
// a sequence unsorted.
func (s *Sequence[T]) Validate() error {
	idx := s.firstUnordered()
	if idx < 0 {
		return nil
	}

	return fmt.Errorf("%w: element %v at index %d sorts before preceding element %v",
		ErrOutOfOrder, s.elements[idx], idx, s.elements[idx-1])
}

// IsSorted reports whether Validate would return nil.
func (s *Sequence[T]) IsSorted() bool {
	return s.firstUnordered() < 0
}

// firstUnordered returns the first index i with elements[i-1] > elements[i], or -1.
func (s *Sequence[T]) firstUnordered() int {
	for idx := 1; idx < len(s.elements); idx++ {
		if s.compare(s.elements[idx-1], s.elements[idx]) > 0 {
			return idx
		}
	}

	return -1
}

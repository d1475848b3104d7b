package sortedarray

import "github.com/amp-labs/amp-sorted/optional"

// ForEach calls visit with each element in ascending order and returns the
// backing storage, unchanged. The returned slice belongs to the sequence; writing
// to it can break the ordering.
func (s *Sequence[T]) ForEach(visit func(T)) []T {
	for _, element := range s.elements {
		visit(element)
	}

	return s.elements
}

// ForEachIndexed is like ForEach but also passes each element's zero-based index.
func (s *Sequence[T]) ForEachIndexed(visit func(T, int)) []T {
	for idx, element := range s.elements {
		visit(element, idx)
	}

	return s.elements
}

// Map returns a new slice holding transform applied to each element of s, in order.
// The sequence is left untouched and the result is not re-sorted.
func Map[T any, U any](s *Sequence[T], transform func(T) U) []U {
	mapped := make([]U, len(s.elements))

	for idx, element := range s.elements {
		mapped[idx] = transform(element)
	}

	return mapped
}

// MapInPlace replaces each element with transform(element), writing into the
// existing backing storage, and returns that storage.
//
// The elements are not re-sorted afterwards. A transform that does not preserve
// order leaves the sequence unsorted; when that happens a warning naming the first
// out-of-order index is logged, and Validate reports ErrOutOfOrder until the
// elements are back in order.
func (s *Sequence[T]) MapInPlace(transform func(T) T) []T {
	for idx, element := range s.elements {
		s.elements[idx] = transform(element)
	}

	if idx := s.firstUnordered(); idx > 0 {
		s.logger.Warn("sortedarray: map in place left elements out of order",
			"index", idx,
			"previous", s.elements[idx-1],
			"current", s.elements[idx])
	}

	return s.elements
}

// Find returns the first element, in ascending order, for which predicate is true.
// It stops at the first match. Returns None if nothing matches.
func (s *Sequence[T]) Find(predicate func(T) bool) optional.Value[T] {
	for _, element := range s.elements {
		if predicate(element) {
			return optional.Some(element)
		}
	}

	return optional.None[T]()
}

// Reduce folds the elements from left to right with combine.
//
// With an initial value, every element is folded into it. Without one, the first
// element becomes the accumulator and the fold continues from the second; an empty
// sequence then returns None.
func (s *Sequence[T]) Reduce(initial optional.Value[T], combine func(acc T, element T) T) optional.Value[T] {
	rest := s.elements

	acc, ok := initial.Get()
	if !ok {
		if len(rest) == 0 {
			return optional.None[T]()
		}

		acc, rest = rest[0], rest[1:]
	}

	for _, element := range rest {
		acc = combine(acc, element)
	}

	return optional.Some(acc)
}

// Fold folds every element of s into initial from left to right. Unlike Reduce,
// the accumulator may have a different type than the elements.
func Fold[T any, U any](s *Sequence[T], initial U, combine func(acc U, element T) U) U {
	acc := initial

	for _, element := range s.elements {
		acc = combine(acc, element)
	}

	return acc
}

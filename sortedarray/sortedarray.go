// Package sortedarray provides Sequence, a slice-backed container that keeps its
// elements in ascending order after every insertion.
//
// Insertion finds its position with a binary search and shifts the tail of the
// slice, so Add costs O(log n) comparisons plus an O(n) copy. Lookups by value are
// O(log n). There is no tree underneath and no deduplication: equal values are all
// kept, and a newly added value lands before the equal values already present.
//
// Lookups that can come back empty (At, Slice, IndexOf, Find, Reduce) return an
// optional.Value rather than a zero value and a flag.
//
// A Sequence is not safe for concurrent use.
package sortedarray

import (
	"cmp"
	"log/slog"

	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/sortable"
)

// Sequence is an ordered, contiguous collection of T.
//
// For all i < j, elements[i] <= elements[j] holds after every operation except
// MapInPlace, which applies its transform without re-sorting.
//
// The zero Sequence has no ordering and must not be used; create one with New or
// NewSortable.
type Sequence[T any] struct {
	elements []T
	compare  compare.Func[T]
	logger   *slog.Logger
}

// New creates a Sequence ordered by the natural ordering of a built-in ordered type
// (integers, floats, strings) and adds each element of initial in turn.
// The initial slice is not retained.
//
// Example:
//
//	seq := sortedarray.New([]int{4, 7, 3, 9, 2})
//	seq.Entries() // [2 3 4 7 9]
func New[T cmp.Ordered](initial []T, opts ...Option) *Sequence[T] {
	return newSequence(compare.Ordered[T](), initial, opts)
}

// NewSortable creates a Sequence ordered by the element type's own LessThan and
// Equals methods and adds each element of initial in turn.
//
// Example:
//
//	seq := sortedarray.NewSortable([]sortable.NaturalString{"file10", "file2"})
//	seq.Entries() // [file2 file10]
func NewSortable[T sortable.Sortable[T]](initial []T, opts ...Option) *Sequence[T] {
	return newSequence(sortable.Func[T](), initial, opts)
}

func newSequence[T any](order compare.Func[T], initial []T, opts []Option) *Sequence[T] {
	o := options{}

	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seq := &Sequence[T]{
		elements: make([]T, 0, max(o.capacity, len(initial))),
		compare:  order,
		logger:   logger,
	}

	// No fast path for sorted input: every element goes through Add.
	for _, element := range initial {
		seq.Add(element)
	}

	return seq
}

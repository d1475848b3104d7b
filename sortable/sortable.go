// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-sorted/compare"
)

// Sortable is implemented by types that carry their own natural ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare derives a three-way comparison from a Sortable type.
// A value that is neither less than nor equal to another sorts after it, so a type
// with a partial order still gets a usable (if arbitrary) position for incomparable pairs.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case a.Equals(b):
		return 0
	default:
		return 1
	}
}

// Func returns Compare as a compare.Func for T.
func Func[T Sortable[T]]() compare.Func[T] {
	return Compare[T]
}

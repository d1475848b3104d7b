// Package compare provides the equality and ordering capabilities that sorted containers are built on.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface decide for themselves what it means for two values
// to be equal.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is a three-way comparison. It returns a negative number when a < b,
// zero when a == b and a positive number when a > b.
type Func[T any] func(a, b T) int

// Ordered returns the natural three-way comparison for Go's built-in ordered types.
// Floating point NaN values sort before every other value, as with cmp.Compare.
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Less reports whether a sorts before b under f.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) < 0
}

// Equal reports whether a and b sort to the same position under f.
func (f Func[T]) Equal(a, b T) bool {
	return f(a, b) == 0
}

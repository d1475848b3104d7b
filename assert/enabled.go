//go:build !assertions_disabled

package assert

import "github.com/amp-labs/amp-sorted/compare"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True asserts that the given value is true.
// If the assertion fails, it panics with a message built from args.
func True(value bool, args ...any) {
	if value {
		return
	}

	fail(args...)
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotAfter asserts that a does not sort after b under cmp.
func NotAfter[T any](cmp compare.Func[T], a, b T, args ...any) {
	if cmp(a, b) <= 0 {
		return
	}

	fail(args...)
}

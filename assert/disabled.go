//go:build assertions_disabled

package assert

import "github.com/amp-labs/amp-sorted/compare"

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True is a no-op when assertions are disabled.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False is a no-op when assertions are disabled.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// NotAfter is a no-op when assertions are disabled.
func NotAfter[T any](cmp compare.Func[T], a, b T, args ...any) {
	// Intentionally left blank
}

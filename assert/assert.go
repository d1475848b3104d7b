// Package assert provides invariant assertions for programming errors.
//
// Assertions panic when they fail. Building with the assertions_disabled tag
// compiles every assertion down to a no-op:
//
//	go build -tags assertions_disabled ./...
package assert

import "fmt"

// fail panics with a message built from args:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func fail(args ...any) {
	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

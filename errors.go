package htn

import "fmt"

// fatalf panics with a formatted message. Every call site is a structural
// or precondition violation per the error-handling taxonomy: a bug in the
// embedder's domain construction or context usage, never an expected
// outcome of planning.
func fatalf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}

package advanced

import "github.com/pkg/errors"

// The search and the exact-arithmetic layer guard internal invariants
// (radicand mixing, rounding convergence) in deeply nested helpers.
// Threading error returns through every arithmetic call would bury the
// algorithm, so invariant violations panic and the public API recovers them
// into an error.

type CheckError error

// Panic with a CheckError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleCheckPanicRecover(r interface{}) error {
	if r != nil {
		if checkError, ok := r.(CheckError); ok {
			return checkError
		}
		panic(r)
	}
	return nil
}

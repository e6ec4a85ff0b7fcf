package arena

import "fmt"

// InvariantError reports a violation of one of the arena's structural
// invariants (fragment reference count, label slot state). This is treated
// as a bug: callers surface it as a returned error rather than panicking,
// the same "typed error, not a panic" discipline used for sentinel errors
// elsewhere in this module.
type InvariantError struct {
	Diagnostic string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("breitling: internal invariant violated: %s", e.Diagnostic)
}

// NewInvariantError builds an InvariantError with a formatted diagnostic.
func NewInvariantError(format string, args ...interface{}) *InvariantError {
	return &InvariantError{Diagnostic: fmt.Sprintf(format, args...)}
}

package minimize

import (
	"errors"
	"fmt"
)

// ErrTransitionTableMissing indicates Minimize was called on a dfa.DFA
// whose transition table was never computed.
var ErrTransitionTableMissing = errors.New("dfa transition table not computed")

// MinimizeError reports a precondition violation ahead of the minimization
// pipeline, wrapping one of this package's sentinel errors.
type MinimizeError struct {
	Msg string
	Err error
}

func (e *MinimizeError) Error() string {
	return fmt.Sprintf("minimization error: %s", e.Msg)
}

// Unwrap exposes the sentinel so callers can
// errors.Is(err, ErrTransitionTableMissing).
func (e *MinimizeError) Unwrap() error {
	return e.Err
}

package dfa

import (
	"errors"
	"fmt"
)

// ErrNotIndexed indicates Subset was called on an NFA that never went
// through nfa.IndexStates.
var ErrNotIndexed = errors.New("nfa not indexed")

// ConstructError reports a precondition violation in subset construction,
// wrapping one of this package's sentinel errors.
type ConstructError struct {
	Msg string
	Err error
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("dfa construction error: %s", e.Msg)
}

// Unwrap exposes the sentinel so callers can errors.Is(err, ErrNotIndexed).
func (e *ConstructError) Unwrap() error {
	return e.Err
}

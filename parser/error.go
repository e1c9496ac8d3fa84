package parser

import (
	"errors"
	"fmt"
)

// Common parser errors. Every SyntaxError wraps one of these so callers can
// errors.Is/errors.As against a stable sentinel instead of matching on the
// positioned diagnostic text.
var (
	// ErrIllegalEscape indicates the lexer emitted token.Illegal (an
	// escape sequence the lexer doesn't recognize), or an escape was used
	// where only a directly-typed byte is allowed (a range bound).
	ErrIllegalEscape = errors.New("illegal escape sequence")

	// ErrUnexpectedToken indicates the current token doesn't start any
	// alternative a production expects.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrEmptyGroup indicates a production that requires at least one
	// literal or range member matched zero.
	ErrEmptyGroup = errors.New("empty group")
)

// SyntaxError reports a grammar violation. By the time one is returned, the
// diagnostic has already been written to the caller's sink by the lexer's
// PrintError; Msg is retained so callers can inspect the failure without
// re-parsing printed output, and Err holds the sentinel identifying which
// kind of violation it was.
type SyntaxError struct {
	Msg string
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Msg)
}

// Unwrap exposes the sentinel so callers can errors.Is(err, ErrEmptyGroup)
// and similar without string-matching Msg.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

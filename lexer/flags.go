package lexer

// Flags is the cooperative control block shared between the lexer and the
// parser for a single compilation. It replaces the original C compiler's
// global bitflags (control.h's CmpCtrl flags) with an explicit, passed-by-
// reference struct, per the "model them as an explicit parser-state record;
// do not reach for thread-local or global storage" design note.
//
// Three flags suppress independent parts of a printed diagnostic. The
// fourth, Abort, is the original C compiler's cross-cutting cancellation
// bit (set once a production fails in a way that must not be locally
// recovered from, e.g. "(a|)"'s dangling alternative). In the original, an
// enclosing production had to poll it because failure and "legitimately
// absent" were both represented by a NULL pointer. Here every production
// returns (*nfa.NFA, error), so the caller already learns about the
// failure from the error return before it would ever consult Abort; the
// field is set at the same point the original set its bit, for fidelity,
// but no production reads it back.
type Flags struct {
	// SuppressInsteadFound disables the ", instead found <token>" suffix.
	SuppressInsteadFound bool
	// SuppressMessage disables the entire diagnostic message.
	SuppressMessage bool
	// SuppressLinePrint disables the source + caret rendering.
	SuppressLinePrint bool
	// Abort is set once a production fails in a way that must not be
	// locally recovered from. See the type doc comment.
	Abort bool
}

// Reset clears every flag. Called at the start of every parse so that
// flags from a prior compilation sharing this Flags value never leak in.
func (f *Flags) Reset() {
	*f = Flags{}
}

package decompose

// Input is the capability contract a token source must satisfy to be
// parsed. The engine only consumes this interface; it ships no
// implementation of its own (the text package provides one for rune
// streams).
//
// Implementations must behave as pure values: Advance returns a new
// cursor and never mutates the receiver, so a cursor can be held across
// a failed sub-parse and reused.
type Input[I, E any] interface {
	// Position reports how many elements precede the cursor. It is
	// monotonically non-decreasing across successive Advance calls.
	Position() int

	// Available reports whether at least one element remains.
	Available() bool

	// Current returns the element under the cursor without consuming
	// it. The boolean result is false exactly when no element remains.
	Current() (E, bool)

	// Advance returns a new cursor positioned past the current element.
	Advance() I
}

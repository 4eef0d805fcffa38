// Package text implements the engine's Input contract for strings and
// provides the usual rune-level parsers on top of it.
package text

// StringInput is a pure-value cursor over the runes of a string.
// Advancing returns a new cursor; the receiver is never mutated, so a
// cursor can be kept and compared across sub-parses. Positions count
// runes, not bytes.
type StringInput struct {
	pos   int
	runes []rune
}

// NewStringInput builds a cursor positioned at the start of s.
func NewStringInput(s string) StringInput {
	return StringInput{runes: []rune(s)}
}

// Position reports how many runes precede the cursor.
func (in StringInput) Position() int { return in.pos }

// Available reports whether at least one rune remains.
func (in StringInput) Available() bool { return in.pos < len(in.runes) }

// Current returns the rune under the cursor without consuming it. The
// boolean result is false exactly when the input is exhausted.
func (in StringInput) Current() (rune, bool) {
	if !in.Available() {
		return 0, false
	}
	return in.runes[in.pos], true
}

// Advance returns a cursor positioned past the current rune.
func (in StringInput) Advance() StringInput { return in.AdvanceBy(1) }

// AdvanceBy returns a cursor moved forward by n runes, clamped to the
// end of the input.
func (in StringInput) AdvanceBy(n int) StringInput {
	if n <= 0 {
		return in
	}
	next := in.pos + n
	if next > len(in.runes) {
		next = len(in.runes)
	}
	return StringInput{pos: next, runes: in.runes}
}

// CurrentSlice returns the next n runes without consuming them. The
// boolean result is false when fewer than n runes remain.
func (in StringInput) CurrentSlice(n int) ([]rune, bool) {
	if n < 0 || in.pos+n > len(in.runes) {
		return nil, false
	}
	return in.runes[in.pos : in.pos+n], true
}

// Rest returns the unconsumed remainder of the input.
func (in StringInput) Rest() string { return string(in.runes[in.pos:]) }

// Equal reports whether two cursors sit at the same position over the
// same underlying runes.
func (in StringInput) Equal(other StringInput) bool {
	if in.pos != other.pos || len(in.runes) != len(other.runes) {
		return false
	}
	for i := range in.runes {
		if in.runes[i] != other.runes[i] {
			return false
		}
	}
	return true
}

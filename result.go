package decompose

// Status classifies the outcome of applying a parser to an input.
type Status uint8

const (
	// StatusSuccess means the parser matched and produced a value.
	StatusSuccess Status = iota

	// StatusFailure means the lookahead element did not satisfy any
	// symbol the parser could have accepted.
	StatusFailure

	// StatusUnavailable means the input ran out where more was
	// required.
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusUnavailable:
		return "unavailable input"
	default:
		return "unknown"
	}
}

// Result is the outcome of one parse attempt. Failures are values, not
// errors: no combinator panics, retries, or swallows a failed
// sub-parse.
//
// On success Remaining sits at or past the position the parser was
// applied at. On failure Remaining sits exactly where the failing
// sub-parse started: consumption is all-or-nothing per combinator step.
type Result[I Input[I, E], E comparable, V any] struct {
	// Status classifies the outcome.
	Status Status

	// Remaining is the rest of the input.
	Remaining I

	// Value is the parsed value. It is meaningful only on success.
	Value V

	// Expected holds the symbols that would have allowed progress. It
	// is populated only on failure; multi-branch combinators merge the
	// expectations of every branch considered.
	Expected SymbolSet[E]
}

// Success builds a successful result.
func Success[I Input[I, E], E comparable, V any](remaining I, value V) Result[I, E, V] {
	return Result[I, E, V]{Status: StatusSuccess, Remaining: remaining, Value: value}
}

// Failure builds a lookahead-mismatch result.
func Failure[I Input[I, E], E comparable, V any](remaining I, expected SymbolSet[E]) Result[I, E, V] {
	return Result[I, E, V]{Status: StatusFailure, Remaining: remaining, Expected: expected}
}

// FailureUnavailable builds an end-of-input result.
func FailureUnavailable[I Input[I, E], E comparable, V any](remaining I, expected SymbolSet[E]) Result[I, E, V] {
	return Result[I, E, V]{Status: StatusUnavailable, Remaining: remaining, Expected: expected}
}

// Succeeded reports whether the parse matched.
func (r Result[I, E, V]) Succeeded() bool { return r.Status == StatusSuccess }

// failed re-types a failed result. The value slot is never read.
func failed[I Input[I, E], E comparable, A, B any](r Result[I, E, A]) Result[I, E, B] {
	return Result[I, E, B]{Status: r.Status, Remaining: r.Remaining, Expected: r.Expected}
}

// Package decompose is a predictive parser-combinator engine. Parsers
// carry statically derived grammar facts — whether they can match empty
// input, and which symbols can begin a match — and every combinator
// consults those facts before committing to a branch. There is no
// backtracking beyond one element of lookahead: grammars must be
// LL(1)-compatible, and in exchange failures are linear-time and report
// the full set of symbols that would have allowed progress.
package decompose

import "sync"

// Parser pairs a parsing function with the grammar facts the
// predictive engine needs. Parsers are pure values: composing two
// parsers never mutates either, and a parser may be shared across
// goroutines and reused across independent Parse calls.
type Parser[I Input[I, E], E comparable, V any] struct {
	acceptsEmpty func() bool
	firstSet     func() SymbolSet[E]
	run          func(I, SymbolSet[E]) Result[I, E, V]
}

// NewParser builds a parser from its grammar facts and run function.
// The run function receives the input and the caller's follow set: the
// symbols that may legally appear immediately after this parser's
// match, used to decide whether an empty match is acceptable at the
// current lookahead.
//
// Both fact functions are memoized behind sync.Once: they run at most
// once, and the cached answer is safe to read from any goroutine.
func NewParser[I Input[I, E], E comparable, V any](
	acceptsEmpty func() bool,
	firstSet func() SymbolSet[E],
	run func(I, SymbolSet[E]) Result[I, E, V],
) Parser[I, E, V] {
	return Parser[I, E, V]{
		acceptsEmpty: sync.OnceValue(acceptsEmpty),
		firstSet:     sync.OnceValue(firstSet),
		run:          run,
	}
}

// AcceptsEmpty reports whether the parser can succeed without
// consuming any input.
func (p Parser[I, E, V]) AcceptsEmpty() bool { return p.acceptsEmpty() }

// FirstSet returns the symbols that can begin a consuming match.
func (p Parser[I, E, V]) FirstSet() SymbolSet[E] { return p.firstSet() }

// Run applies the parser at the given input with the caller's follow
// set. It performs no predictive gate of its own; most callers want
// Parse or ParsePrefix.
func (p Parser[I, E, V]) Run(input I, follow SymbolSet[E]) Result[I, E, V] {
	return p.run(input, follow)
}

// Parse runs the parser against the whole input: an end-of-input
// requirement is appended, so a successful parse leaves nothing
// unconsumed.
func (p Parser[I, E, V]) Parse(input I) Result[I, E, V] {
	return AndL(p, EndOfInput[I, E]()).ParsePrefix(input)
}

// ParsePrefix runs the parser with the predictive gate but without
// requiring it to consume the whole input: the parser is only invoked
// when the lookahead could begin a match, so failures surface before
// any sub-parser runs.
func (p Parser[I, E, V]) ParsePrefix(input I) Result[I, E, V] {
	follow := NewSymbolSet(Empty[E]())
	if p.AcceptsEmpty() {
		return p.run(input, follow)
	}
	first := p.FirstSet()
	if !input.Available() {
		return FailureUnavailable[I, E, V](input, first)
	}
	c, _ := input.Current()
	if !first.Matches(c) {
		return Failure[I, E, V](input, first)
	}
	return p.run(input, follow)
}

// Or chooses between p and q on the current lookahead symbol. See
// Choice for the selection rules.
func (p Parser[I, E, V]) Or(q Parser[I, E, V]) Parser[I, E, V] {
	return Choice(p, q)
}

// Map transforms the success value of p with f. Consumption and
// grammar facts are untouched.
func Map[I Input[I, E], E comparable, A, B any](p Parser[I, E, A], f func(A) B) Parser[I, E, B] {
	return NewParser(p.acceptsEmpty, p.firstSet,
		func(input I, follow SymbolSet[E]) Result[I, E, B] {
			r := p.run(input, follow)
			if r.Status != StatusSuccess {
				return failed[I, E, A, B](r)
			}
			return Success[I, E](r.Remaining, f(r.Value))
		})
}

// Apply sequences two parsers, applying the function produced by the
// first to the value produced by the second.
//
// The combined parser accepts empty input only when both halves do,
// and its FIRST set is the first half's, extended with the second
// half's when the first half is nullable. At runtime the second half
// is gated: if it cannot match empty input and the lookahead after the
// first half is not in its FIRST set, the sequence fails predictively
// without invoking it.
func Apply[I Input[I, E], E comparable, A, B any](pf Parser[I, E, func(A) B], pa Parser[I, E, A]) Parser[I, E, B] {
	return andThen(pf, pa, func(f func(A) B, a A) B { return f(a) })
}

// andThen sequences two parsers and combines their values. It carries
// the gating and fact logic shared by Apply, AndL, and AndR without
// routing the left value through a function-typed parser, which would
// make instantiating Parse on any Parser instantiation cyclic.
func andThen[I Input[I, E], E comparable, A, B, C any](pf Parser[I, E, A], pa Parser[I, E, B], combine func(A, B) C) Parser[I, E, C] {
	acceptsEmpty := func() bool {
		return pf.AcceptsEmpty() && pa.AcceptsEmpty()
	}
	firstSet := func() SymbolSet[E] {
		first := pf.FirstSet()
		if pf.AcceptsEmpty() {
			first = first.Union(pa.FirstSet())
		}
		return first
	}
	run := func(input I, follow SymbolSet[E]) Result[I, E, C] {
		followForF := pa.FirstSet()
		if pa.AcceptsEmpty() {
			followForF = followForF.Union(follow)
		}
		rf := pf.run(input, followForF)
		if rf.Status != StatusSuccess {
			return failed[I, E, A, C](rf)
		}
		remaining := rf.Remaining
		if !pa.AcceptsEmpty() {
			if !remaining.Available() {
				return FailureUnavailable[I, E, C](remaining, pa.FirstSet())
			}
			if c, _ := remaining.Current(); !pa.FirstSet().Matches(c) {
				return Failure[I, E, C](remaining, pa.FirstSet())
			}
		}
		ra := pa.run(remaining, follow)
		if ra.Status != StatusSuccess {
			return failed[I, E, B, C](ra)
		}
		return Success[I, E](ra.Remaining, combine(rf.Value, ra.Value))
	}
	return NewParser(acceptsEmpty, firstSet, run)
}

// AndL runs both parsers in order and keeps the left value.
func AndL[I Input[I, E], E comparable, A, B any](left Parser[I, E, A], right Parser[I, E, B]) Parser[I, E, A] {
	return andThen(left, right, func(a A, _ B) A { return a })
}

// AndR runs both parsers in order and keeps the right value.
func AndR[I Input[I, E], E comparable, A, B any](left Parser[I, E, A], right Parser[I, E, B]) Parser[I, E, B] {
	return andThen(left, right, func(_ A, b B) B { return b })
}

// Bind feeds the success value of p into f and continues with the
// parser f returns. The continuation cannot be inspected statically,
// so the combined grammar facts are p's alone: the continuation must
// only be reachable through input consumed by p. Prefer Apply and the
// repetition combinators, which thread follow sets exactly.
func Bind[I Input[I, E], E comparable, A, B any](p Parser[I, E, A], f func(A) Parser[I, E, B]) Parser[I, E, B] {
	return NewParser(p.acceptsEmpty, p.firstSet,
		func(input I, follow SymbolSet[E]) Result[I, E, B] {
			r := p.run(input, follow)
			if r.Status != StatusSuccess {
				return failed[I, E, A, B](r)
			}
			return f(r.Value).run(r.Remaining, follow)
		})
}

// Defer delays the construction of a parser until first use, breaking
// the definition cycle of recursive grammars. The builder runs at most
// once; a left-recursive grammar will deadlock in it, which is a
// grammar defect the engine does not guard against.
func Defer[I Input[I, E], E comparable, V any](build func() Parser[I, E, V]) Parser[I, E, V] {
	resolve := sync.OnceValue(build)
	return Parser[I, E, V]{
		acceptsEmpty: func() bool { return resolve().AcceptsEmpty() },
		firstSet:     func() SymbolSet[E] { return resolve().FirstSet() },
		run: func(input I, follow SymbolSet[E]) Result[I, E, V] {
			return resolve().run(input, follow)
		},
	}
}

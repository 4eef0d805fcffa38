package decompose

import (
	"fmt"
	"strings"
)

// Pure succeeds with value without consuming input.
func Pure[I Input[I, E], E comparable, V any](value V) Parser[I, E, V] {
	empty := NewSymbolSet(Empty[E]())
	return NewParser(
		func() bool { return true },
		func() SymbolSet[E] { return empty },
		func(input I, _ SymbolSet[E]) Result[I, E, V] {
			return Success[I, E](input, value)
		},
	)
}

// Fail never succeeds. It reports itself as nullable so it composes
// safely as the default branch of a choice.
func Fail[I Input[I, E], E comparable, V any]() Parser[I, E, V] {
	empty := NewSymbolSet(Empty[E]())
	return NewParser(
		func() bool { return true },
		func() SymbolSet[E] { return empty },
		func(input I, _ SymbolSet[E]) Result[I, E, V] {
			return Failure[I, E, V](input, NewSymbolSet[E]())
		},
	)
}

// Satisfy consumes a single element for which pred holds. The name
// identifies the condition in FIRST sets and error expectations.
func Satisfy[I Input[I, E], E comparable](name string, pred func(E) bool) Parser[I, E, E] {
	expected := NewSymbolSet(Predicate(name, pred))
	return NewParser(
		func() bool { return false },
		func() SymbolSet[E] { return expected },
		func(input I, _ SymbolSet[E]) Result[I, E, E] {
			if !input.Available() {
				return FailureUnavailable[I, E, E](input, expected)
			}
			c, _ := input.Current()
			if !pred(c) {
				return Failure[I, E, E](input, expected)
			}
			return Success[I, E](input.Advance(), c)
		},
	)
}

// Expect consumes exactly the element e and succeeds with it.
func Expect[I Input[I, E], E comparable](e E) Parser[I, E, E] {
	return ExpectAs[I, E, E](e, e)
}

// ExpectAs consumes exactly the element e and succeeds with value.
func ExpectAs[I Input[I, E], E comparable, V any](e E, value V) Parser[I, E, V] {
	expected := NewSymbolSet(Value(e))
	return NewParser(
		func() bool { return false },
		func() SymbolSet[E] { return expected },
		func(input I, _ SymbolSet[E]) Result[I, E, V] {
			if !input.Available() {
				return FailureUnavailable[I, E, V](input, expected)
			}
			if c, _ := input.Current(); c != e {
				return Failure[I, E, V](input, expected)
			}
			return Success[I, E](input.Advance(), value)
		},
	)
}

// Any consumes any single element.
func Any[I Input[I, E], E comparable]() Parser[I, E, E] {
	expected := NewSymbolSet(All[E]())
	return NewParser(
		func() bool { return false },
		func() SymbolSet[E] { return expected },
		func(input I, _ SymbolSet[E]) Result[I, E, E] {
			if !input.Available() {
				return FailureUnavailable[I, E, E](input, expected)
			}
			c, _ := input.Current()
			return Success[I, E](input.Advance(), c)
		},
	)
}

// EndOfInput succeeds, consuming nothing, only when no input remains.
func EndOfInput[I Input[I, E], E comparable]() Parser[I, E, struct{}] {
	empty := NewSymbolSet(Empty[E]())
	return NewParser(
		func() bool { return true },
		func() SymbolSet[E] { return empty },
		func(input I, _ SymbolSet[E]) Result[I, E, struct{}] {
			if input.Available() {
				return Failure[I, E, struct{}](input, empty)
			}
			return Success[I, E](input, struct{}{})
		},
	)
}

// OneOf consumes any element present in elems. Its FIRST set is one
// value symbol per element.
func OneOf[I Input[I, E], E comparable](elems ...E) Parser[I, E, E] {
	members := make(map[E]struct{}, len(elems))
	symbols := make([]Symbol[E], 0, len(elems))
	for _, e := range elems {
		members[e] = struct{}{}
		symbols = append(symbols, Value(e))
	}
	expected := NewSymbolSet(symbols...)
	return NewParser(
		func() bool { return false },
		func() SymbolSet[E] { return expected },
		func(input I, _ SymbolSet[E]) Result[I, E, E] {
			if !input.Available() {
				return FailureUnavailable[I, E, E](input, expected)
			}
			c, _ := input.Current()
			if _, ok := members[c]; !ok {
				return Failure[I, E, E](input, expected)
			}
			return Success[I, E](input.Advance(), c)
		},
	)
}

// NoneOf consumes any element not present in elems. Its FIRST set is a
// single named predicate.
func NoneOf[I Input[I, E], E comparable](elems ...E) Parser[I, E, E] {
	members := make(map[E]struct{}, len(elems))
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		members[e] = struct{}{}
		parts = append(parts, formatElement(e))
	}
	name := fmt.Sprintf("none of {%s}", strings.Join(parts, ", "))
	return Satisfy[I](name, func(e E) bool {
		_, ok := members[e]
		return !ok
	})
}

// Choice tries the alternatives strictly by lookahead: the first one
// whose FIRST set matches the current element is committed to and
// never retried. When no FIRST set matches but the lookahead belongs
// to the follow set, the first nullable alternative is taken. When
// alternatives have overlapping FIRST sets the earlier one wins; that
// tie-break is only safe for LL(1) grammars, and relying on it is a
// grammar defect, not engine behavior to lean on.
//
// On failure the expectation is the union of every alternative's FIRST
// set plus the follow set.
func Choice[I Input[I, E], E comparable, V any](parsers ...Parser[I, E, V]) Parser[I, E, V] {
	switch len(parsers) {
	case 0:
		return Fail[I, E, V]()
	case 1:
		return parsers[0]
	}
	alternatives := make([]Parser[I, E, V], len(parsers))
	copy(alternatives, parsers)

	acceptsEmpty := func() bool {
		for _, p := range alternatives {
			if p.AcceptsEmpty() {
				return true
			}
		}
		return false
	}
	firstSet := func() SymbolSet[E] {
		first := NewSymbolSet[E]()
		for _, p := range alternatives {
			first = first.Union(p.FirstSet())
		}
		return first
	}
	run := func(input I, follow SymbolSet[E]) Result[I, E, V] {
		if input.Available() {
			c, _ := input.Current()
			for _, p := range alternatives {
				if p.FirstSet().Matches(c) {
					return p.run(input, follow)
				}
			}
			if follow.Matches(c) {
				for _, p := range alternatives {
					if p.AcceptsEmpty() {
						return p.run(input, follow)
					}
				}
			}
			return Failure[I, E, V](input, firstSet().Union(follow))
		}
		for _, p := range alternatives {
			if p.AcceptsEmpty() {
				return p.run(input, follow)
			}
		}
		return FailureUnavailable[I, E, V](input, firstSet().Union(follow))
	}
	return NewParser(acceptsEmpty, firstSet, run)
}

// Sequence runs the parsers in order, collecting their values. An
// empty list behaves like Pure of an empty result.
func Sequence[I Input[I, E], E comparable, V any](parsers []Parser[I, E, V]) Parser[I, E, []V] {
	acc := Pure[I, E]([]V(nil))
	for _, p := range parsers {
		acc = Apply(Map(acc, func(vs []V) func(V) []V {
			return func(v V) []V {
				out := make([]V, len(vs), len(vs)+1)
				copy(out, vs)
				return append(out, v)
			}
		}), p)
	}
	return acc
}

// Traverse runs the parsers in order, transforming each value with f.
func Traverse[I Input[I, E], E comparable, V, W any](parsers []Parser[I, E, V], f func(V) W) Parser[I, E, []W] {
	mapped := make([]Parser[I, E, W], len(parsers))
	for i, p := range parsers {
		mapped[i] = Map(p, f)
	}
	return Sequence(mapped)
}

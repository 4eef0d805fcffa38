package decompose

// Many applies p zero or more times, collecting the values. It loops
// while the lookahead belongs to p's FIRST set and stops, without
// failing, the moment it does not.
//
// p must not accept empty input: a nullable p makes zero progress per
// iteration and the loop would never terminate. That precondition is
// the caller's to uphold; the engine does not guard it at runtime.
func Many[I Input[I, E], E comparable, V any](p Parser[I, E, V]) Parser[I, E, []V] {
	return NewParser(
		func() bool { return true },
		func() SymbolSet[E] { return p.FirstSet() },
		func(input I, follow SymbolSet[E]) Result[I, E, []V] {
			first := p.FirstSet()
			elementFollow := first.Union(follow)
			var values []V
			current := input
			for {
				if !current.Available() {
					return Success[I, E](current, values)
				}
				c, _ := current.Current()
				if !first.Matches(c) {
					return Success[I, E](current, values)
				}
				r := p.run(current, elementFollow)
				if r.Status != StatusSuccess {
					return failed[I, E, V, []V](r)
				}
				values = append(values, r.Value)
				current = r.Remaining
			}
		},
	)
}

// Many1 applies p one or more times.
func Many1[I Input[I, E], E comparable, V any](p Parser[I, E, V]) Parser[I, E, []V] {
	return Apply(Map(p, func(v V) func([]V) []V {
		return func(vs []V) []V { return prepend(v, vs) }
	}), Many(p))
}

// SkipMany applies p zero or more times, discarding the values. The
// same non-nullability precondition as Many applies.
func SkipMany[I Input[I, E], E comparable, V any](p Parser[I, E, V]) Parser[I, E, struct{}] {
	return NewParser(
		func() bool { return true },
		func() SymbolSet[E] { return p.FirstSet() },
		func(input I, follow SymbolSet[E]) Result[I, E, struct{}] {
			first := p.FirstSet()
			elementFollow := first.Union(follow)
			current := input
			for {
				if !current.Available() {
					return Success[I, E](current, struct{}{})
				}
				c, _ := current.Current()
				if !first.Matches(c) {
					return Success[I, E](current, struct{}{})
				}
				r := p.run(current, elementFollow)
				if r.Status != StatusSuccess {
					return failed[I, E, V, struct{}](r)
				}
				current = r.Remaining
			}
		},
	)
}

// SkipMany1 applies p at least once, discarding the values.
func SkipMany1[I Input[I, E], E comparable, V any](p Parser[I, E, V]) Parser[I, E, struct{}] {
	return AndR(p, SkipMany(p))
}

// Count applies p exactly n times, failing with the first sub-failure
// when fewer matches are available.
func Count[I Input[I, E], E comparable, V any](p Parser[I, E, V], n int) Parser[I, E, []V] {
	if n <= 0 {
		return Pure[I, E]([]V(nil))
	}
	parsers := make([]Parser[I, E, V], n)
	for i := range parsers {
		parsers[i] = p
	}
	return Sequence(parsers)
}

// ManyTill applies p until end succeeds, checking end first on every
// iteration. The collected p values are returned and end's value is
// discarded. It fails when neither p nor end can proceed.
func ManyTill[I Input[I, E], E comparable, V, W any](p Parser[I, E, V], end Parser[I, E, W]) Parser[I, E, []V] {
	return NewParser(
		func() bool { return end.AcceptsEmpty() },
		func() SymbolSet[E] { return p.FirstSet().Union(end.FirstSet()) },
		func(input I, follow SymbolSet[E]) Result[I, E, []V] {
			pFirst := p.FirstSet()
			endFirst := end.FirstSet()
			elementFollow := pFirst.Union(endFirst).Union(follow)
			var values []V
			current := input
			for {
				if !current.Available() {
					if end.AcceptsEmpty() {
						r := end.run(current, follow)
						if r.Status != StatusSuccess {
							return failed[I, E, W, []V](r)
						}
						return Success[I, E](r.Remaining, values)
					}
					return FailureUnavailable[I, E, []V](current, pFirst.Union(endFirst))
				}
				c, _ := current.Current()
				if endFirst.Matches(c) {
					r := end.run(current, follow)
					if r.Status != StatusSuccess {
						return failed[I, E, W, []V](r)
					}
					return Success[I, E](r.Remaining, values)
				}
				if pFirst.Matches(c) {
					r := p.run(current, elementFollow)
					if r.Status != StatusSuccess {
						return failed[I, E, V, []V](r)
					}
					values = append(values, r.Value)
					current = r.Remaining
					continue
				}
				if end.AcceptsEmpty() && follow.Matches(c) {
					r := end.run(current, follow)
					if r.Status != StatusSuccess {
						return failed[I, E, W, []V](r)
					}
					return Success[I, E](r.Remaining, values)
				}
				return Failure[I, E, []V](current, pFirst.Union(endFirst))
			}
		},
	)
}

// Option applies p, succeeding with def when p's FIRST set does not
// match the lookahead.
func Option[I Input[I, E], E comparable, V any](p Parser[I, E, V], def V) Parser[I, E, V] {
	return p.Or(Pure[I, E](def))
}

// Maybe wraps p's value in a pointer, succeeding with nil when p does
// not apply.
func Maybe[I Input[I, E], E comparable, V any](p Parser[I, E, V]) Parser[I, E, *V] {
	return Map(p, func(v V) *V { return &v }).Or(Pure[I, E]((*V)(nil)))
}

// Optional applies p when the lookahead allows it, discarding its
// value either way.
func Optional[I Input[I, E], E comparable, V any](p Parser[I, E, V]) Parser[I, E, struct{}] {
	return Map(p, func(V) struct{} { return struct{}{} }).Or(Pure[I, E](struct{}{}))
}

func prepend[V any](v V, vs []V) []V {
	out := make([]V, 0, len(vs)+1)
	out = append(out, v)
	return append(out, vs...)
}

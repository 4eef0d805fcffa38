package decompose

// chainStep is one (operator, operand) pair collected while folding a
// left-associative chain.
type chainStep[V any] struct {
	combine func(V, V) V
	operand V
}

// ChainL1 parses one or more operands separated by operators, folding
// the results left-associatively: a·b·c is (a·b)·c.
func ChainL1[I Input[I, E], E comparable, V any](operand Parser[I, E, V], operator Parser[I, E, func(V, V) V]) Parser[I, E, V] {
	step := Apply(Map(operator, func(f func(V, V) V) func(V) chainStep[V] {
		return func(y V) chainStep[V] { return chainStep[V]{combine: f, operand: y} }
	}), operand)
	rest := Many(step)
	return Apply(Map(operand, func(x V) func([]chainStep[V]) V {
		return func(steps []chainStep[V]) V {
			acc := x
			for _, s := range steps {
				acc = s.combine(acc, s.operand)
			}
			return acc
		}
	}), rest)
}

// ChainL is ChainL1 with a default value returned when no operand is
// present at the current lookahead.
func ChainL[I Input[I, E], E comparable, V any](operand Parser[I, E, V], operator Parser[I, E, func(V, V) V], def V) Parser[I, E, V] {
	return ChainL1(operand, operator).Or(Pure[I, E](def))
}

// ChainR1 parses one or more operands separated by operators, folding
// the results right-associatively: a·b·c is a·(b·c). The recursive
// tail is built through Defer so the grammar can reference itself.
func ChainR1[I Input[I, E], E comparable, V any](operand Parser[I, E, V], operator Parser[I, E, func(V, V) V]) Parser[I, E, V] {
	tail := Apply(Map(operator, func(f func(V, V) V) func(V) func(V) V {
		return func(rhs V) func(V) V {
			return func(lhs V) V { return f(lhs, rhs) }
		}
	}), Defer(func() Parser[I, E, V] { return ChainR1(operand, operator) }))
	rest := tail.Or(Pure[I, E](func(lhs V) V { return lhs }))
	return Apply(Map(operand, func(x V) func(func(V) V) V {
		return func(k func(V) V) V { return k(x) }
	}), rest)
}

// ChainR is ChainR1 with a default value returned when no operand is
// present at the current lookahead.
func ChainR[I Input[I, E], E comparable, V any](operand Parser[I, E, V], operator Parser[I, E, func(V, V) V], def V) Parser[I, E, V] {
	return ChainR1(operand, operator).Or(Pure[I, E](def))
}

// SepBy parses zero or more values separated by sep. A trailing
// separator is not permitted.
func SepBy[I Input[I, E], E comparable, V, S any](p Parser[I, E, V], sep Parser[I, E, S]) Parser[I, E, []V] {
	return SepBy1(p, sep).Or(Pure[I, E]([]V(nil)))
}

// SepBy1 parses one or more values separated by sep.
func SepBy1[I Input[I, E], E comparable, V, S any](p Parser[I, E, V], sep Parser[I, E, S]) Parser[I, E, []V] {
	rest := Many(AndR(sep, p))
	return Apply(Map(p, func(v V) func([]V) []V {
		return func(vs []V) []V { return prepend(v, vs) }
	}), rest)
}

// EndBy parses zero or more values, each terminated by sep.
func EndBy[I Input[I, E], E comparable, V, S any](p Parser[I, E, V], sep Parser[I, E, S]) Parser[I, E, []V] {
	return Many(AndL(p, sep))
}

// EndBy1 parses one or more values, each terminated by sep.
func EndBy1[I Input[I, E], E comparable, V, S any](p Parser[I, E, V], sep Parser[I, E, S]) Parser[I, E, []V] {
	return Many1(AndL(p, sep))
}

// SepEndBy parses zero or more values separated by sep, allowing an
// optional trailing separator.
func SepEndBy[I Input[I, E], E comparable, V, S any](p Parser[I, E, V], sep Parser[I, E, S]) Parser[I, E, []V] {
	return SepEndBy1(p, sep).Or(Pure[I, E]([]V(nil)))
}

// SepEndBy1 parses one or more values separated by sep, allowing an
// optional trailing separator.
func SepEndBy1[I Input[I, E], E comparable, V, S any](p Parser[I, E, V], sep Parser[I, E, S]) Parser[I, E, []V] {
	more := AndR(sep, Defer(func() Parser[I, E, []V] { return SepEndBy(p, sep) }))
	rest := more.Or(Pure[I, E]([]V(nil)))
	return Apply(Map(p, func(v V) func([]V) []V {
		return func(vs []V) []V { return prepend(v, vs) }
	}), rest)
}

// Between parses open, then body, then close, keeping only body's
// value.
func Between[I Input[I, E], E comparable, O, V, C any](open Parser[I, E, O], body Parser[I, E, V], close Parser[I, E, C]) Parser[I, E, V] {
	return AndL(AndR(open, body), close)
}

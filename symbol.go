package decompose

import (
	"fmt"
	"sort"
	"strings"
)

// SymbolKind discriminates the closed vocabulary of Symbol variants.
type SymbolKind uint8

const (
	// SymbolEmpty matches without consuming input. It marks nullable
	// parsers and stands for "end of input" in expectation sets.
	SymbolEmpty SymbolKind = iota

	// SymbolAll matches any element.
	SymbolAll

	// SymbolValue matches exactly one element.
	SymbolValue

	// SymbolPredicate matches any element satisfying a named condition.
	SymbolPredicate
)

// Symbol describes a class of elements a parser is willing to consume
// next. FIRST sets and error expectations are sets of Symbols.
//
// Symbols are immutable values. Two predicate symbols are equal exactly
// when their names are equal; the predicate function itself never
// participates in identity, since functions cannot be compared.
type Symbol[E comparable] struct {
	kind SymbolKind
	val  E
	name string
	pred func(E) bool
}

// Empty returns the symbol that matches without consuming.
func Empty[E comparable]() Symbol[E] {
	return Symbol[E]{kind: SymbolEmpty}
}

// All returns the wildcard symbol.
func All[E comparable]() Symbol[E] {
	return Symbol[E]{kind: SymbolAll}
}

// Value returns the symbol matching exactly the element v.
func Value[E comparable](v E) Symbol[E] {
	return Symbol[E]{kind: SymbolValue, val: v}
}

// Predicate returns the symbol matching any element for which pred
// holds. The name is the symbol's identity and how it prints in error
// messages.
func Predicate[E comparable](name string, pred func(E) bool) Symbol[E] {
	return Symbol[E]{kind: SymbolPredicate, name: name, pred: pred}
}

// Kind returns the symbol's variant.
func (s Symbol[E]) Kind() SymbolKind { return s.kind }

// Matches reports whether the element e belongs to the class the
// symbol describes. The empty symbol matches no element: it stands for
// a match of zero elements, not a match of any element.
func (s Symbol[E]) Matches(e E) bool {
	switch s.kind {
	case SymbolAll:
		return true
	case SymbolValue:
		return s.val == e
	case SymbolPredicate:
		return s.pred(e)
	default:
		return false
	}
}

// Equal reports whether two symbols have the same identity. Predicate
// bodies are ignored.
func (s Symbol[E]) Equal(other Symbol[E]) bool {
	return s.key() == other.key()
}

// Compare orders symbols as empty < all < value < predicate, with
// values ordered by their rendered representation and predicates by
// name. The order exists so expectation sets print deterministically;
// it carries no grammatical meaning.
func (s Symbol[E]) Compare(other Symbol[E]) int {
	if s.kind != other.kind {
		return int(s.kind) - int(other.kind)
	}
	switch s.kind {
	case SymbolValue:
		return strings.Compare(formatElement(s.val), formatElement(other.val))
	case SymbolPredicate:
		return strings.Compare(s.name, other.name)
	default:
		return 0
	}
}

// String returns the human readable representation used in error
// messages.
func (s Symbol[E]) String() string {
	switch s.kind {
	case SymbolEmpty:
		return "end of input"
	case SymbolAll:
		return "any element"
	case SymbolValue:
		return formatElement(s.val)
	default:
		return s.name
	}
}

// key projects the symbol onto its comparable identity.
func (s Symbol[E]) key() symbolKey[E] {
	return symbolKey[E]{kind: s.kind, val: s.val, name: s.name}
}

type symbolKey[E comparable] struct {
	kind SymbolKind
	val  E
	name string
}

func formatElement[E comparable](v E) string {
	switch x := any(v).(type) {
	case rune:
		return fmt.Sprintf("%q", x)
	case byte:
		return fmt.Sprintf("%q", x)
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprint(x)
	}
}

//  ---- SymbolSet ----

// SymbolSet is a set of symbols keyed on symbol identity. Sets are
// treated as immutable: every operation returns a new set.
type SymbolSet[E comparable] struct {
	members map[symbolKey[E]]Symbol[E]
}

// NewSymbolSet builds a set from the given symbols. Symbols with the
// same identity collapse into one member.
func NewSymbolSet[E comparable](symbols ...Symbol[E]) SymbolSet[E] {
	members := make(map[symbolKey[E]]Symbol[E], len(symbols))
	for _, s := range symbols {
		members[s.key()] = s
	}
	return SymbolSet[E]{members: members}
}

// Len returns the number of symbols in the set.
func (ss SymbolSet[E]) Len() int { return len(ss.members) }

// Contains reports whether the set holds a symbol with s's identity.
func (ss SymbolSet[E]) Contains(s Symbol[E]) bool {
	_, ok := ss.members[s.key()]
	return ok
}

// Matches reports whether any symbol in the set matches the element e.
func (ss SymbolSet[E]) Matches(e E) bool {
	for _, s := range ss.members {
		if s.Matches(e) {
			return true
		}
	}
	return false
}

// Union returns the set containing the members of both sets.
func (ss SymbolSet[E]) Union(other SymbolSet[E]) SymbolSet[E] {
	if other.Len() == 0 {
		return ss
	}
	if ss.Len() == 0 {
		return other
	}
	members := make(map[symbolKey[E]]Symbol[E], len(ss.members)+len(other.members))
	for k, s := range ss.members {
		members[k] = s
	}
	for k, s := range other.members {
		members[k] = s
	}
	return SymbolSet[E]{members: members}
}

// Equal reports whether both sets hold exactly the same identities.
func (ss SymbolSet[E]) Equal(other SymbolSet[E]) bool {
	if len(ss.members) != len(other.members) {
		return false
	}
	for k := range ss.members {
		if _, ok := other.members[k]; !ok {
			return false
		}
	}
	return true
}

// Symbols returns the members sorted by Compare.
func (ss SymbolSet[E]) Symbols() []Symbol[E] {
	out := make([]Symbol[E], 0, len(ss.members))
	for _, s := range ss.members {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// Strings returns the sorted human readable representations of the
// members.
func (ss SymbolSet[E]) Strings() []string {
	symbols := ss.Symbols()
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = s.String()
	}
	return out
}

// String renders the set in sorted order.
func (ss SymbolSet[E]) String() string {
	return "{" + strings.Join(ss.Strings(), ", ") + "}"
}

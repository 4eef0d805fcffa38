package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	decompose "github.com/bluk/decompose-sub000"
)

func TestSymbolMatches(t *testing.T) {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }

	tests := []struct {
		name    string
		symbol  decompose.Symbol[rune]
		element rune
		want    bool
	}{
		{"empty matches nothing", decompose.Empty[rune](), 'a', false},
		{"all matches anything", decompose.All[rune](), '!', true},
		{"value matches itself", decompose.Value('a'), 'a', true},
		{"value rejects others", decompose.Value('a'), 'b', false},
		{"predicate holds", decompose.Predicate("digit", isDigit), '7', true},
		{"predicate rejects", decompose.Predicate("digit", isDigit), 'x', false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.symbol.Matches(test.element))
		})
	}
}

func TestSymbolIdentity(t *testing.T) {
	t.Run("predicates compare by name only", func(t *testing.T) {
		a := decompose.Predicate("digit", func(r rune) bool { return true })
		b := decompose.Predicate("digit", func(r rune) bool { return false })
		c := decompose.Predicate("letter", func(r rune) bool { return true })

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("sets collapse same identity", func(t *testing.T) {
		set := decompose.NewSymbolSet(
			decompose.Predicate("digit", func(r rune) bool { return true }),
			decompose.Predicate("digit", func(r rune) bool { return false }),
		)
		assert.Equal(t, 1, set.Len())
	})
}

func TestSymbolOrdering(t *testing.T) {
	set := decompose.NewSymbolSet(
		decompose.Predicate("digit", func(r rune) bool { return false }),
		decompose.Value('b'),
		decompose.All[rune](),
		decompose.Empty[rune](),
		decompose.Value('a'),
	)

	want := []string{"end of input", "any element", "'a'", "'b'", "digit"}
	assert.Equal(t, want, set.Strings())
	assert.Equal(t, "{end of input, any element, 'a', 'b', digit}", set.String())
}

func TestSymbolSetOperations(t *testing.T) {
	ab := decompose.NewSymbolSet(decompose.Value('a'), decompose.Value('b'))
	bc := decompose.NewSymbolSet(decompose.Value('b'), decompose.Value('c'))

	t.Run("union", func(t *testing.T) {
		u := ab.Union(bc)
		assert.Equal(t, 3, u.Len())
		assert.True(t, u.Contains(decompose.Value('a')))
		assert.True(t, u.Contains(decompose.Value('c')))
	})

	t.Run("union with empty set is identity", func(t *testing.T) {
		empty := decompose.NewSymbolSet[rune]()
		assert.True(t, ab.Union(empty).Equal(ab))
		assert.True(t, empty.Union(ab).Equal(ab))
	})

	t.Run("matches consults every member", func(t *testing.T) {
		set := decompose.NewSymbolSet(
			decompose.Value('x'),
			decompose.Predicate("digit", func(r rune) bool { return r >= '0' && r <= '9' }),
		)
		assert.True(t, set.Matches('x'))
		assert.True(t, set.Matches('5'))
		assert.False(t, set.Matches('y'))
	})

	t.Run("empty symbol never matches an element", func(t *testing.T) {
		set := decompose.NewSymbolSet(decompose.Empty[rune]())
		assert.False(t, set.Matches('a'))
	})

	t.Run("equality by identity", func(t *testing.T) {
		require.True(t, ab.Equal(decompose.NewSymbolSet(decompose.Value('b'), decompose.Value('a'))))
		require.False(t, ab.Equal(bc))
	})
}

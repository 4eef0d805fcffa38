package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	decompose "github.com/bluk/decompose-sub000"
	"github.com/bluk/decompose-sub000/text"
)

func addSubOp() decompose.Parser[text.StringInput, rune, func(int, int) int] {
	return decompose.Map(text.OneOf("+-"), func(r rune) func(int, int) int {
		if r == '+' {
			return func(a, b int) int { return a + b }
		}
		return func(a, b int) int { return a - b }
	})
}

func TestChainL1(t *testing.T) {
	p := decompose.ChainL1(digitInt(), addSubOp())

	tests := []struct {
		input string
		want  int
	}{
		{"5", 5},
		{"1+2", 3},
		{"7-2-3", 2}, // (7-2)-3
		{"9-4+1", 6},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			r := p.Parse(input(test.input))
			require.Equal(t, decompose.StatusSuccess, r.Status)
			assert.Equal(t, test.want, r.Value)
		})
	}

	t.Run("dangling operator", func(t *testing.T) {
		r := p.Parse(input("1+"))
		require.Equal(t, decompose.StatusUnavailable, r.Status)
		assert.Equal(t, 2, r.Remaining.Position())
		assert.Equal(t, []string{"digit"}, r.Expected.Strings())
	})

	t.Run("no operand", func(t *testing.T) {
		r := p.Parse(input(""))
		assert.Equal(t, decompose.StatusUnavailable, r.Status)
	})
}

func TestChainR1(t *testing.T) {
	p := decompose.ChainR1(digitInt(), addSubOp())

	tests := []struct {
		input string
		want  int
	}{
		{"5", 5},
		{"1+2", 3},
		{"7-2-3", 8}, // 7-(2-3)
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			r := p.Parse(input(test.input))
			require.Equal(t, decompose.StatusSuccess, r.Status)
			assert.Equal(t, test.want, r.Value)
		})
	}
}

func TestChainDefaults(t *testing.T) {
	t.Run("left", func(t *testing.T) {
		p := decompose.ChainL(digitInt(), addSubOp(), 99)
		r := p.Parse(input(""))
		require.Equal(t, decompose.StatusSuccess, r.Status)
		assert.Equal(t, 99, r.Value)
	})

	t.Run("right", func(t *testing.T) {
		p := decompose.ChainR(digitInt(), addSubOp(), 99)
		r := p.Parse(input(""))
		require.Equal(t, decompose.StatusSuccess, r.Status)
		assert.Equal(t, 99, r.Value)
	})
}

func TestSepBy(t *testing.T) {
	p := decompose.SepBy(digitInt(), text.Char(','))

	t.Run("separated values", func(t *testing.T) {
		r := p.Parse(input("1,2,3"))
		require.Equal(t, decompose.StatusSuccess, r.Status)
		assert.Equal(t, []int{1, 2, 3}, r.Value)
	})

	t.Run("single value", func(t *testing.T) {
		r := p.Parse(input("1"))
		require.Equal(t, decompose.StatusSuccess, r.Status)
		assert.Equal(t, []int{1}, r.Value)
	})

	t.Run("empty input", func(t *testing.T) {
		r := p.Parse(input(""))
		require.Equal(t, decompose.StatusSuccess, r.Status)
		assert.Empty(t, r.Value)
	})

	t.Run("trailing separator rejected", func(t *testing.T) {
		r := p.Parse(input("1,2,"))
		require.Equal(t, decompose.StatusUnavailable, r.Status)
		assert.Equal(t, 4, r.Remaining.Position())
		assert.Equal(t, []string{"digit"}, r.Expected.Strings())
	})
}

func TestSepBy1(t *testing.T) {
	p := decompose.SepBy1(digitInt(), text.Char(','))

	r := p.Parse(input("4,5"))
	require.Equal(t, decompose.StatusSuccess, r.Status)
	assert.Equal(t, []int{4, 5}, r.Value)

	r = p.Parse(input(""))
	assert.Equal(t, decompose.StatusUnavailable, r.Status)
}

func TestEndBy(t *testing.T) {
	p := decompose.EndBy(digitInt(), text.Char(';'))

	t.Run("each value terminated", func(t *testing.T) {
		r := p.Parse(input("1;2;"))
		require.Equal(t, decompose.StatusSuccess, r.Status)
		assert.Equal(t, []int{1, 2}, r.Value)
	})

	t.Run("missing final terminator", func(t *testing.T) {
		r := p.Parse(input("1;2"))
		require.Equal(t, decompose.StatusUnavailable, r.Status)
		assert.Equal(t, []string{"';'"}, r.Expected.Strings())
	})

	t.Run("empty input", func(t *testing.T) {
		r := p.Parse(input(""))
		require.Equal(t, decompose.StatusSuccess, r.Status)
		assert.Empty(t, r.Value)
	})
}

func TestEndBy1(t *testing.T) {
	p := decompose.EndBy1(digitInt(), text.Char(';'))

	r := p.Parse(input("1;"))
	require.Equal(t, decompose.StatusSuccess, r.Status)
	assert.Equal(t, []int{1}, r.Value)

	r = p.Parse(input(""))
	assert.Equal(t, decompose.StatusUnavailable, r.Status)
}

func TestSepEndBy(t *testing.T) {
	p := decompose.SepEndBy(digitInt(), text.Char(','))

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"no trailing separator", "1,2", []int{1, 2}},
		{"trailing separator", "1,2,", []int{1, 2}},
		{"single value", "1", []int{1}},
		{"single value terminated", "1,", []int{1}},
		{"empty input", "", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := p.Parse(input(test.input))
			require.Equal(t, decompose.StatusSuccess, r.Status)
			if test.want == nil {
				assert.Empty(t, r.Value)
			} else {
				assert.Equal(t, test.want, r.Value)
			}
		})
	}
}

func TestSepEndBy1(t *testing.T) {
	p := decompose.SepEndBy1(digitInt(), text.Char(','))

	r := p.Parse(input("1,2,"))
	require.Equal(t, decompose.StatusSuccess, r.Status)
	assert.Equal(t, []int{1, 2}, r.Value)

	r = p.Parse(input(""))
	assert.Equal(t, decompose.StatusUnavailable, r.Status)
}

func TestBetween(t *testing.T) {
	p := decompose.Between(text.Char('('), digitInt(), text.Char(')'))

	r := p.Parse(input("(5)"))
	require.Equal(t, decompose.StatusSuccess, r.Status)
	assert.Equal(t, 5, r.Value)

	r = p.Parse(input("(5"))
	require.Equal(t, decompose.StatusUnavailable, r.Status)
	assert.Equal(t, []string{"')'"}, r.Expected.Strings())
}

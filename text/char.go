package text

import (
	"unicode"

	decompose "github.com/bluk/decompose-sub000"
)

// Char matches exactly the rune r.
func Char(r rune) decompose.Parser[StringInput, rune, rune] {
	return decompose.Expect[StringInput, rune](r)
}

// String matches the literal s rune by rune, so a mismatch is reported
// at the exact rune that diverged.
func String(s string) decompose.Parser[StringInput, rune, string] {
	runes := []rune(s)
	if len(runes) == 0 {
		return decompose.Pure[StringInput, rune]("")
	}
	parsers := make([]decompose.Parser[StringInput, rune, rune], len(runes))
	for i, r := range runes {
		parsers[i] = Char(r)
	}
	return decompose.Map(decompose.Sequence(parsers), func(rs []rune) string {
		return string(rs)
	})
}

// AnyChar matches any single rune.
func AnyChar() decompose.Parser[StringInput, rune, rune] {
	return decompose.Any[StringInput, rune]()
}

// Letter matches a Unicode letter.
func Letter() decompose.Parser[StringInput, rune, rune] {
	return decompose.Satisfy[StringInput]("letter", unicode.IsLetter)
}

// Digit matches a decimal digit, '0' through '9'.
func Digit() decompose.Parser[StringInput, rune, rune] {
	return decompose.Satisfy[StringInput]("digit", func(r rune) bool {
		return r >= '0' && r <= '9'
	})
}

// HexDigit matches a hexadecimal digit.
func HexDigit() decompose.Parser[StringInput, rune, rune] {
	return decompose.Satisfy[StringInput]("hex digit", func(r rune) bool {
		switch {
		case r >= '0' && r <= '9':
			return true
		case r >= 'a' && r <= 'f':
			return true
		case r >= 'A' && r <= 'F':
			return true
		}
		return false
	})
}

// Whitespace matches a single Unicode whitespace rune.
func Whitespace() decompose.Parser[StringInput, rune, rune] {
	return decompose.Satisfy[StringInput]("whitespace", unicode.IsSpace)
}

// Spaces skips zero or more whitespace runes.
func Spaces() decompose.Parser[StringInput, rune, struct{}] {
	return decompose.SkipMany(Whitespace())
}

// OneOf matches any rune present in chars.
func OneOf(chars string) decompose.Parser[StringInput, rune, rune] {
	return decompose.OneOf[StringInput, rune]([]rune(chars)...)
}

// NoneOf matches any rune not present in chars.
func NoneOf(chars string) decompose.Parser[StringInput, rune, rune] {
	return decompose.NoneOf[StringInput, rune]([]rune(chars)...)
}

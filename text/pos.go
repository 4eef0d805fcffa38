package text

import (
	"fmt"
	"sort"
)

//  ---- Location ----

// Location is a human-oriented position within a source text: 1-based
// line and column, both counted in runes, plus the absolute rune
// offset.
type Location struct {
	Line   int
	Column int
	Cursor int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

//  ---- Span ----

// Span is a half-open region between two Locations.
type Span struct {
	Start Location
	End   Location
}

func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line && s.Start.Column == s.End.Column {
		return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
	}
	return fmt.Sprintf("%d:%d..%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

//  ---- Position index ----

// PosIndex maps rune offsets to Locations. Line starts are indexed
// once up front; each lookup is a binary search.
type PosIndex struct {
	// lineStart holds the 0-based rune offset of each line start.
	lineStart []int
	size      int
}

// NewPosIndex builds the index for source.
func NewPosIndex(source string) *PosIndex {
	// Line 1 always starts at offset 0.
	lineStart := make([]int, 1, 64)
	n := 0
	for _, r := range source {
		n++
		if r == '\n' {
			// next line starts after '\n'
			lineStart = append(lineStart, n)
		}
	}
	return &PosIndex{lineStart: lineStart, size: n}
}

// LocationAt returns the Location of the given rune offset, clamped to
// the bounds of the source.
func (pi *PosIndex) LocationAt(cursor int) Location {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > pi.size {
		cursor = pi.size
	}

	// Find the first line start past cursor, then step back one.
	lineIdx := sort.Search(len(pi.lineStart), func(i int) bool {
		return pi.lineStart[i] > cursor
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}

	return Location{
		Line:   lineIdx + 1,
		Column: cursor - pi.lineStart[lineIdx] + 1,
		Cursor: cursor,
	}
}

// LocationAt is a convenience for one-off lookups; for repeated
// lookups over the same source build a PosIndex.
func LocationAt(source string, cursor int) Location {
	return NewPosIndex(source).LocationAt(cursor)
}

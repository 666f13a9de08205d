package buffer

import (
	"iter"

	"github.com/yaklabco/pairlex/pkg/lexer"
)

// LineMatch is a Match annotated with its absolute line number. It is a
// read-only view returned by queries, never stored.
type LineMatch struct {
	lexer.Match

	// Line is the 0-based line number of the match.
	Line int
}

// IterFrom returns the matches at or after (line, col) in forward
// document order: same-line matches at-or-after the column, then every
// following line. The sequence is finite and may be ranged over
// repeatedly.
func (b *Buffer) IterFrom(line, col int) iter.Seq[LineMatch] {
	return func(yield func(LineMatch) bool) {
		for li := max(line, 0); li < len(b.matchesByLine); li++ {
			for _, m := range b.matchesByLine[li] {
				if li == line && m.Col < col {
					continue
				}
				if !yield(LineMatch{Match: m, Line: li}) {
					return
				}
			}
		}
	}
}

// IterTo returns the matches strictly before (line, col) in backward
// document order: same-line matches before the column first, then every
// preceding line, each line's matches right to left. The sequence is
// finite and may be ranged over repeatedly.
func (b *Buffer) IterTo(line, col int) iter.Seq[LineMatch] {
	return func(yield func(LineMatch) bool) {
		if line < 0 {
			return
		}
		for li := min(line, len(b.matchesByLine)-1); li >= 0; li-- {
			matches := b.matchesByLine[li]
			for i := len(matches) - 1; i >= 0; i-- {
				m := matches[i]
				if li == line && m.Col >= col {
					continue
				}
				if !yield(LineMatch{Match: m, Line: li}) {
					return
				}
			}
		}
	}
}

// SpanAt returns the identity of the lexical span enclosing the
// position, if any. Same-line span openers are checked first; a span
// whose closer is absent on the line runs past line end and still
// encloses the position. Otherwise the line's inherited terminal state
// decides.
func (b *Buffer) SpanAt(line, col int) (string, bool) {
	if line < 0 || line >= len(b.matchesByLine) {
		return "", false
	}
	matches := b.matchesByLine[line]

	for i := len(matches) - 1; i >= 0; i-- {
		opening := matches[i]
		if opening.Kind != lexer.KindOpening || opening.Col > col {
			continue
		}
		if opening.Sym.Class != lexer.ClassInlineSpan && opening.Sym.Class != lexer.ClassBlockSpan {
			continue
		}

		closing, ok := spanClosingOn(matches, opening)
		if ok && closing.Col < col {
			// This span ends before the position; keep looking.
			continue
		}
		return opening.Sym.Span, true
	}

	// A span that started on an earlier line shows up in this line's
	// inherited state.
	switch st := b.stateByLine[line]; st.Kind {
	case lexer.StateInInlineSpan, lexer.StateInBlockSpan:
		return st.Span, true
	}
	return "", false
}

// spanClosingOn finds the closer of a span opener on the same line.
func spanClosingOn(matches []lexer.Match, opening lexer.Match) (lexer.Match, bool) {
	for _, m := range matches {
		if m.Kind == lexer.KindClosing && m.Col > opening.Col &&
			m.Sym == opening.Sym && m.Height == opening.Height {
			return m, true
		}
	}
	return lexer.Match{}, false
}

// MatchAt returns the match whose byte range contains the column.
func (b *Buffer) MatchAt(line, col int) (lexer.Match, bool) {
	for _, m := range b.LineMatches(line) {
		if col >= m.Col && col < m.Col+m.Len() {
			return m, true
		}
	}
	return lexer.Match{}, false
}

// MatchPair returns the (opener, closer) pair of the delimiter at the
// position. Unmatched delimiters and non-delimiter matches yield
// nothing. Within a resolved buffer, symbol identity plus stack height
// uniquely identifies the partner when scanning away from the position.
func (b *Buffer) MatchPair(line, col int) (opening, closing LineMatch, ok bool) {
	m, found := b.MatchAt(line, col)
	if !found || m.Sym.Class != lexer.ClassDelimiter || !m.Matched() {
		return LineMatch{}, LineMatch{}, false
	}
	at := LineMatch{Match: m, Line: line}

	switch m.Kind {
	case lexer.KindOpening:
		for partner := range b.iterBeyond(line, m.Col, true) {
			if partner.Sym == m.Sym && partner.Height == m.Height {
				return at, partner, true
			}
		}
	case lexer.KindClosing:
		for partner := range b.iterBeyond(line, m.Col, false) {
			if partner.Sym == m.Sym && partner.Height == m.Height {
				return partner, at, true
			}
		}
	}
	return LineMatch{}, LineMatch{}, false
}

// iterBeyond scans strictly past a column: forward from just after it,
// or backward from just before it.
func (b *Buffer) iterBeyond(line, col int, forward bool) iter.Seq[LineMatch] {
	if forward {
		return b.IterFrom(line, col+1)
	}
	return b.IterTo(line, col)
}

// StackHeightAt returns the nesting depth exactly at the position, not
// tied to any specific match. The first resolved match forward of the
// cursor determines it (a closer sits one level inside its own depth);
// with nothing ahead, the nearest resolved match behind does
// (symmetrically for openers). An empty buffer is depth 0.
func (b *Buffer) StackHeightAt(line, col int) int {
	for m := range b.IterFrom(line, col) {
		if m.Matched() {
			if m.Kind == lexer.KindClosing {
				return m.Height + 1
			}
			return m.Height
		}
	}
	for m := range b.IterTo(line, col) {
		if m.Matched() {
			if m.Kind == lexer.KindOpening {
				return m.Height + 1
			}
			return m.Height
		}
	}
	return 0
}

// UnmatchedOpeningBefore walks backward from the position looking for
// the unmatched opener of the given pair that a closer inserted at the
// cursor would close. Crossing into an outer nesting level is only
// possible through an opener of the requested pair; any other
// lower-depth match aborts the search.
func (b *Buffer) UnmatchedOpeningBefore(openMarker, closeMarker string, line, col int) (LineMatch, bool) {
	cursor := b.StackHeightAt(line, col)
	lowest := cursor
	current := cursor

	for m := range b.IterTo(line, col) {
		if m.Sym.Class != lexer.ClassDelimiter {
			continue
		}

		if m.Matched() {
			if m.Height < lowest {
				// For example: ( [] ( | )
				// The outer pair can still be closed from the cursor,
				// but only via an opener of the requested pair.
				if m.Kind == lexer.KindOpening && m.Sym.Open == openMarker && m.Sym.Close == closeMarker {
					lowest = m.Height
				} else {
					return LineMatch{}, false
				}
			}
			current = m.Height
			if m.Kind == lexer.KindClosing {
				current++
			}
		}

		if m.Kind == lexer.KindOpening && m.Sym.Open == openMarker && m.Sym.Close == closeMarker &&
			!m.Matched() && current == lowest {
			return m, true
		}
	}
	return LineMatch{}, false
}

// UnmatchedClosingAfter is the forward mirror of
// UnmatchedOpeningBefore: the unmatched closer of the given pair that
// an opener inserted at the cursor would match.
func (b *Buffer) UnmatchedClosingAfter(openMarker, closeMarker string, line, col int) (LineMatch, bool) {
	cursor := b.StackHeightAt(line, col)
	lowest := cursor
	current := cursor

	for m := range b.IterFrom(line, col) {
		if m.Sym.Class != lexer.ClassDelimiter {
			continue
		}

		if m.Matched() {
			if m.Height < lowest {
				if m.Kind == lexer.KindClosing && m.Sym.Open == openMarker && m.Sym.Close == closeMarker {
					lowest = m.Height
				} else {
					return LineMatch{}, false
				}
			}
			current = m.Height
			if m.Kind == lexer.KindOpening {
				current++
			}
		}

		if m.Kind == lexer.KindClosing && m.Sym.Open == openMarker && m.Sym.Close == closeMarker &&
			!m.Matched() && current == lowest {
			return m, true
		}
	}
	return LineMatch{}, false
}

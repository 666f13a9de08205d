// Package buffer owns the per-line results of a parsed text snapshot
// and answers cursor-relative queries over them: pair lookup, enclosing
// span lookup, nesting depth, and unmatched-delimiter search. A Buffer
// is mutated in place by incremental reparse calls and must be owned by
// a single goroutine; queries are read-only.
package buffer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/pairlex/pkg/indent"
	"github.com/yaklabco/pairlex/pkg/lexer"
)

// ErrUnknownLanguage is returned when no matcher is registered for the
// requested language identifier. The buffer is left untouched.
var ErrUnknownLanguage = errors.New("unknown language")

// Buffer holds the per-line match lists, terminal lexical states, and
// indentation widths of the last-parsed snapshot. All three slices are
// index-aligned by line number and equal in length.
type Buffer struct {
	matchesByLine [][]lexer.Match
	stateByLine   []lexer.State
	indents       []uint8
	tabWidth      uint8
}

// Parse lexes a full snapshot and resolves stack heights. It fails only
// when the language has no registered matcher, in which case no buffer
// is produced.
func Parse(language string, tabWidth uint8, lines []string) (*Buffer, error) {
	m, ok := lexer.Lookup(language)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	lines = nonEmpty(lines)
	matchesByLine, stateByLine := lexer.Parse(m, lines, lexer.Normal())

	b := &Buffer{
		matchesByLine: matchesByLine,
		stateByLine:   stateByLine,
		indents:       indent.Widths(lines, tabWidth),
		tabWidth:      tabWidth,
	}
	b.resolveHeights()
	return b, nil
}

// Edit describes the line range replaced by an incremental reparse.
// The zero value replaces nothing at line 0; use Whole() for a full
// reparse.
type Edit struct {
	// Start is the first replaced line. Clamped to the buffer length.
	Start int

	// OldEnd is one past the last replaced line of the pre-edit buffer.
	// Negative means through the end of the buffer.
	OldEnd int

	// NewEnd is one past the last replaced line of the post-edit
	// buffer. Negative means Start plus the number of new lines.
	NewEnd int
}

// Whole returns an Edit covering the entire buffer.
func Whole() Edit {
	return Edit{OldEnd: -1, NewEnd: -1}
}

// Reparse re-lexes only the edited line range, seeding the lexical
// state from the line preceding it, splices the results in, and then
// re-resolves stack heights over the whole buffer (a delimiter's depth
// can depend on content arbitrarily far away).
//
// On error the buffer is left completely unchanged.
func (b *Buffer) Reparse(language string, lines []string, e Edit) error {
	m, ok := lexer.Lookup(language)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	maxLine := len(b.matchesByLine)
	start := min(max(e.Start, 0), maxLine)
	oldEnd := e.OldEnd
	if oldEnd < 0 {
		oldEnd = maxLine
	}
	oldEnd = min(oldEnd, maxLine)
	if oldEnd < start {
		oldEnd = start
	}

	initial := lexer.Normal()
	if start > 0 {
		initial = b.stateByLine[start-1]
	}

	lines = nonEmpty(lines)
	matchesByLine, stateByLine := lexer.Parse(m, lines, initial)
	widths := indent.Widths(lines, b.tabWidth)

	newEnd := e.NewEnd
	if newEnd < 0 {
		newEnd = start + len(matchesByLine)
	}
	n := min(max(newEnd-start, 0), len(matchesByLine))

	b.matchesByLine = slices.Concat(b.matchesByLine[:start], matchesByLine[:n], b.matchesByLine[oldEnd:])
	b.stateByLine = slices.Concat(b.stateByLine[:start], stateByLine[:n], b.stateByLine[oldEnd:])
	b.indents = slices.Concat(b.indents[:start], widths[:n], b.indents[oldEnd:])

	// Deleting every line leaves the one-empty-line representation, the
	// same shape Parse produces for empty input.
	if len(b.matchesByLine) == 0 {
		b.matchesByLine = [][]lexer.Match{nil}
		b.stateByLine = []lexer.State{lexer.Normal()}
		b.indents = []uint8{0}
	}

	b.resolveHeights()
	return nil
}

// LineCount returns the number of lines in the last-parsed snapshot.
func (b *Buffer) LineCount() int {
	return len(b.matchesByLine)
}

// LineMatches returns the matches of a line, or nil when the line is
// out of range. The returned slice aliases the buffer's storage and is
// invalidated by the next reparse.
func (b *Buffer) LineMatches(line int) []lexer.Match {
	if line < 0 || line >= len(b.matchesByLine) {
		return nil
	}
	return b.matchesByLine[line]
}

// LineState returns the terminal lexical state of a line.
func (b *Buffer) LineState(line int) (lexer.State, bool) {
	if line < 0 || line >= len(b.stateByLine) {
		return lexer.State{}, false
	}
	return b.stateByLine[line], true
}

// IndentWidths returns the per-line indentation widths. The slice
// aliases the buffer's storage.
func (b *Buffer) IndentWidths() []uint8 {
	return b.indents
}

// nonEmpty coerces an empty snapshot to a single empty line, matching
// the lexer's one-entry-minimum output so the per-line slices stay
// aligned.
func nonEmpty(lines []string) []string {
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

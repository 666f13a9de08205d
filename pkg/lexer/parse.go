package lexer

import "strings"

// Parse drives the matcher over a snapshot of lines, starting from
// initial, and returns the matches and terminal lexical state of every
// line. Both slices have exactly one entry per input line (an empty
// snapshot is treated as one empty line).
//
// Escape handling: a backslash marks the immediately following byte as
// escaped; an escaped token is treated as ordinary text. A backslash
// that is itself escaped has no effect.
func Parse(m Matcher, lines []string, initial State) ([][]Match, []State) {
	if len(lines) == 0 {
		lines = []string{""}
	}

	matchesByLine := make([][]Match, 0, len(lines))
	stateByLine := make([]State, 0, len(lines))

	text := strings.Join(lines, "\n")
	r := &tokenRun{sc: NewScanner([]byte(text), m.Interest())}

	var lineMatches []Match
	state := initial
	emit := func(mt Match) { lineMatches = append(lineMatches, mt) }

	// Column of a pending backslash, or -1. The escape applies only to
	// the single byte directly after it.
	escapedCol := -1

	for {
		tok, ok := r.next()
		if !ok {
			break
		}

		if tok.Byte == '\n' {
			matchesByLine = append(matchesByLine, lineMatches)
			lineMatches = nil
			escapedCol = -1

			// Strings, line comments, and inline spans cannot cross
			// lines.
			if state.singleLine() {
				state = State{}
			}
			stateByLine = append(stateByLine, state)
			continue
		}

		if tok.Byte == '\\' {
			if escapedCol >= 0 && escapedCol == tok.Col-1 {
				// This backslash is itself escaped.
				escapedCol = -1
				continue
			}
			escapedCol = tok.Col
			continue
		}

		escaped := escapedCol >= 0 && escapedCol == tok.Col-1
		state = m.Step(state, tok, r, escaped, emit)
	}

	// Final line has no trailing newline; flush it explicitly.
	matchesByLine = append(matchesByLine, lineMatches)
	stateByLine = append(stateByLine, state)

	return matchesByLine, stateByLine
}

// tokenRun adapts a Scanner into the parser's token source and the
// matcher's bounded Lookahead.
type tokenRun struct {
	sc  *Scanner
	buf []Token
}

func (r *tokenRun) next() (Token, bool) {
	if len(r.buf) > 0 {
		t := r.buf[0]
		r.buf = r.buf[1:]
		return t, true
	}
	return r.sc.Next()
}

// Peek implements Lookahead.
func (r *tokenRun) Peek(n int) (Token, bool) {
	for len(r.buf) < n {
		t, ok := r.sc.Next()
		if !ok {
			return Token{}, false
		}
		r.buf = append(r.buf, t)
	}
	return r.buf[n-1], true
}

// Skip implements Lookahead.
func (r *tokenRun) Skip(n int) {
	for n > 0 && len(r.buf) > 0 {
		r.buf = r.buf[1:]
		n--
	}
	for ; n > 0; n-- {
		r.sc.Next()
	}
}

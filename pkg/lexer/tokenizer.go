package lexer

// Scanner walks raw text left to right and surfaces only the bytes the
// active language cares about: newlines, the escape character, and
// members of the interest set. Runs of ordinary text produce no tokens,
// so the work done downstream is proportional to the number of
// syntactically relevant bytes rather than total text size.
//
// A Scanner is a single forward pass; create a new one per call. It is
// not resumable after exhaustion.
type Scanner struct {
	text     []byte
	interest ByteSet
	pos      int
	col      int
}

// NewScanner returns a scanner over text emitting newline, backslash,
// and interest-set bytes with per-line 0-based columns.
func NewScanner(text []byte, interest ByteSet) *Scanner {
	// Newlines delimit lines and backslashes drive escape handling, so
	// both are always surfaced.
	interest.Add('\n')
	interest.Add('\\')
	return &Scanner{text: text, interest: interest}
}

// Next returns the next interesting token, or ok == false at end of
// input.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.text) {
		b := s.text[s.pos]
		col := s.col
		s.pos++

		if b == '\n' {
			s.col = 0
			return Token{Byte: b, Col: col}, true
		}

		s.col++
		if s.interest.Has(b) {
			return Token{Byte: b, Col: col}, true
		}
	}
	return Token{}, false
}

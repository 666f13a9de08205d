// Package lexer implements the language-aware lexical scanner behind
// pairlex: a tokenizer that surfaces only syntactically interesting
// bytes, per-language matcher definitions, and the parser state machine
// that turns raw text into per-line match lists and lexical states.
package lexer

// Token is a single interesting byte surfaced by the Scanner: its raw
// value and its 0-based byte column within the current line. Tokens are
// ephemeral; the parser consumes them immediately.
type Token struct {
	// Byte is the raw byte value at this position.
	Byte byte

	// Col is the 0-based byte column within the token's line.
	Col int
}

// ByteSet is a 256-entry bitset of byte values. The zero value is the
// empty set.
type ByteSet [4]uint64

// Add inserts b into the set.
func (s *ByteSet) Add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

// AddString inserts every byte of m into the set.
func (s *ByteSet) AddString(m string) {
	for i := 0; i < len(m); i++ {
		s.Add(m[i])
	}
}

// Has reports whether b is a member of the set.
func (s ByteSet) Has(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

package lexer

// StateKind identifies the lexical context the parser is in.
type StateKind uint8

const (
	// StateNormal is ordinary code outside any string, comment, or
	// span.
	StateNormal StateKind = iota

	// StateInString is inside a single-line string.
	StateInString

	// StateInBlockString is inside a multi-line string.
	StateInBlockString

	// StateInLineComment is inside a line comment.
	StateInLineComment

	// StateInBlockComment is inside a block comment.
	StateInBlockComment

	// StateInInlineSpan is inside a single-line span.
	StateInInlineSpan

	// StateInBlockSpan is inside a multi-line span.
	StateInBlockSpan
)

// String returns a short name for the state kind.
func (k StateKind) String() string {
	switch k {
	case StateNormal:
		return "normal"
	case StateInString:
		return "string"
	case StateInBlockString:
		return "block-string"
	case StateInLineComment:
		return "line-comment"
	case StateInBlockComment:
		return "block-comment"
	case StateInInlineSpan:
		return "inline-span"
	case StateInBlockSpan:
		return "block-span"
	default:
		return "unknown"
	}
}

// State is the lexical context carried across a line boundary. Exactly
// one State is recorded per line: the context at the end of that line.
// The zero value is StateNormal.
//
// StateInString, StateInLineComment, and StateInInlineSpan never
// survive past the line that opened them; the parser forces them back
// to normal at each newline. Block variants persist until their closing
// marker is found.
type State struct {
	// Kind is the context category.
	Kind StateKind

	// Open and Close are the markers of the active construct. For
	// strings Open equals Close (the quote).
	Open  string
	Close string

	// Span is the identity of the active span for StateInInlineSpan and
	// StateInBlockSpan.
	Span string
}

// Normal returns the zero State, outside any construct.
func Normal() State {
	return State{}
}

// IsNormal reports whether the state is outside any construct.
func (s State) IsNormal() bool {
	return s.Kind == StateNormal
}

// singleLine reports whether this context cannot legally cross a line
// boundary.
func (s State) singleLine() bool {
	switch s.Kind {
	case StateInString, StateInLineComment, StateInInlineSpan:
		return true
	default:
		return false
	}
}

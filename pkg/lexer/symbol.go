package lexer

// Kind categorizes how a Match participates in pairing.
type Kind uint8

const (
	// KindOpening marks the opening side of a pair.
	KindOpening Kind = iota

	// KindClosing marks the closing side of a pair.
	KindClosing

	// KindOther marks self-contained matches that do not pair, such as
	// line-comment markers.
	KindOther
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindOpening:
		return "opening"
	case KindClosing:
		return "closing"
	default:
		return "other"
	}
}

// SymbolClass classifies the semantic category of a Symbol.
type SymbolClass uint8

const (
	// ClassDelimiter is a bracket-style pair such as ( and ).
	ClassDelimiter SymbolClass = iota

	// ClassLineComment is a line-comment marker such as //.
	ClassLineComment

	// ClassBlockComment is a block-comment marker pair such as /* and */.
	ClassBlockComment

	// ClassInlineSpan is a named single-line region, e.g. inline code.
	ClassInlineSpan

	// ClassBlockSpan is a named multi-line region, e.g. a fenced code
	// block.
	ClassBlockSpan
)

// Symbol is the semantic identity of a Match. Symbols compare by value:
// two matches pair only when their symbols are equal.
type Symbol struct {
	// Class is the semantic category.
	Class SymbolClass

	// Open is the opening marker text. For line comments it holds the
	// marker itself and Close is empty.
	Open string

	// Close is the closing marker text.
	Close string

	// Span is the region identity for ClassInlineSpan and
	// ClassBlockSpan; empty otherwise.
	Span string
}

// DelimiterSym returns the symbol for a delimiter pair.
func DelimiterSym(open, close string) Symbol {
	return Symbol{Class: ClassDelimiter, Open: open, Close: close}
}

// LineCommentSym returns the symbol for a line-comment marker.
func LineCommentSym(marker string) Symbol {
	return Symbol{Class: ClassLineComment, Open: marker}
}

// BlockCommentSym returns the symbol for a block-comment pair.
func BlockCommentSym(open, close string) Symbol {
	return Symbol{Class: ClassBlockComment, Open: open, Close: close}
}

// InlineSpanSym returns the symbol for a named inline span.
func InlineSpanSym(name, open, close string) Symbol {
	return Symbol{Class: ClassInlineSpan, Open: open, Close: close, Span: name}
}

// BlockSpanSym returns the symbol for a named block span.
func BlockSpanSym(name, open, close string) Symbol {
	return Symbol{Class: ClassBlockSpan, Open: open, Close: close, Span: name}
}

// HeightNone marks a Match whose nesting depth is unresolved,
// unmatched, or inapplicable (comments and spans never carry a depth).
const HeightNone = -1

// Match is a recognized lexical unit on a line: a delimiter, comment
// marker, or span marker. Height is HeightNone until stack-height
// resolution runs; after resolution it remains HeightNone for unmatched
// delimiters and for all non-delimiter matches.
type Match struct {
	// Kind is the pairing role of this match.
	Kind Kind

	// Sym is the semantic identity used for pairing.
	Sym Symbol

	// Col is the 0-based byte column of the match on its line.
	Col int

	// Height is the resolved nesting depth (outermost = 0), or
	// HeightNone.
	Height int
}

// Marker returns the marker text of this side of the match.
func (m Match) Marker() string {
	if m.Kind == KindClosing {
		return m.Sym.Close
	}
	return m.Sym.Open
}

// Len returns the byte length of the match on its line.
func (m Match) Len() int {
	return len(m.Marker())
}

// Matched reports whether the match received a nesting depth during
// resolution. Always false for non-delimiter matches.
func (m Match) Matched() bool {
	return m.Height != HeightNone
}

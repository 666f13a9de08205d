package lexer

import "sort"

// Lookahead provides bounded multi-token peek into the token stream so
// a matcher can recognize and consume multi-byte markers atomically.
type Lookahead interface {
	// Peek returns the nth upcoming token (n >= 1) without consuming
	// it.
	Peek(n int) (Token, bool)

	// Skip consumes n upcoming tokens.
	Skip(n int)
}

// Matcher is the per-language capability the parser drives: the set of
// marker bytes it wants surfaced and the transition logic that turns a
// token plus the current State into zero or more Matches and a new
// State. Implementations are immutable; all mutable state lives in the
// parser.
type Matcher interface {
	// Language returns the language identifier.
	Language() string

	// Interest returns the set of bytes the tokenizer should surface.
	Interest() ByteSet

	// Step advances the lexical state for one token. Matches produced
	// at this position are delivered through emit. When escaped is set
	// the token must be treated as ordinary text.
	Step(st State, tok Token, look Lookahead, escaped bool, emit func(Match)) State
}

// Pair is an open/close marker pair.
type Pair struct {
	Open  string
	Close string
}

// Span is a named open/close marker pair describing a lexical region.
type Span struct {
	Name  string
	Open  string
	Close string
}

// Table is the declarative marker configuration for one language. It is
// the only per-language customization point the engine exposes.
type Table struct {
	// Delimiters are bracket pairs that receive nesting depths.
	Delimiters []Pair

	// LineComments are markers that comment out the rest of the line.
	LineComments []string

	// BlockComments are comment pairs that may span lines.
	BlockComments []Pair

	// Strings are quote markers for single-line strings.
	Strings []string

	// BlockStrings are quote pairs for strings that may span lines.
	BlockStrings []Pair

	// InlineSpans are named single-line regions.
	InlineSpans []Span

	// BlockSpans are named multi-line regions.
	BlockSpans []Span
}

// candidate is one marker recognizable in the normal state, compiled
// with the match to emit and the state to enter.
type candidate struct {
	marker string
	sym    Symbol
	kind   Kind
	next   State
	emits  bool
}

// Definition is a compiled, immutable Matcher built from a declarative
// Table.
type Definition struct {
	name       string
	table      Table
	candidates []candidate
	interest   ByteSet
}

// Define compiles a declarative table into a Matcher for the named
// language.
func Define(name string, t Table) *Definition {
	d := &Definition{name: name, table: t}

	add := func(c candidate) {
		d.candidates = append(d.candidates, c)
		d.interest.AddString(c.marker)
		d.interest.AddString(c.next.Close)
	}

	// Category order is the tie-break when marker lengths collide; the
	// longest-marker-wins sort below handles prefixes such as a block
	// span opener extending an inline span opener.
	for _, s := range t.BlockSpans {
		add(candidate{
			marker: s.Open,
			sym:    BlockSpanSym(s.Name, s.Open, s.Close),
			kind:   KindOpening,
			next:   State{Kind: StateInBlockSpan, Open: s.Open, Close: s.Close, Span: s.Name},
			emits:  true,
		})
	}
	for _, s := range t.InlineSpans {
		add(candidate{
			marker: s.Open,
			sym:    InlineSpanSym(s.Name, s.Open, s.Close),
			kind:   KindOpening,
			next:   State{Kind: StateInInlineSpan, Open: s.Open, Close: s.Close, Span: s.Name},
			emits:  true,
		})
	}
	for _, p := range t.BlockComments {
		add(candidate{
			marker: p.Open,
			sym:    BlockCommentSym(p.Open, p.Close),
			kind:   KindOpening,
			next:   State{Kind: StateInBlockComment, Open: p.Open, Close: p.Close},
			emits:  true,
		})
	}
	for _, m := range t.LineComments {
		add(candidate{
			marker: m,
			sym:    LineCommentSym(m),
			kind:   KindOther,
			next:   State{Kind: StateInLineComment},
			emits:  true,
		})
	}
	for _, p := range t.BlockStrings {
		add(candidate{
			marker: p.Open,
			next:   State{Kind: StateInBlockString, Open: p.Open, Close: p.Close},
		})
	}
	for _, q := range t.Strings {
		add(candidate{
			marker: q,
			next:   State{Kind: StateInString, Open: q, Close: q},
		})
	}
	for _, p := range t.Delimiters {
		add(candidate{marker: p.Open, sym: DelimiterSym(p.Open, p.Close), kind: KindOpening, emits: true})
		add(candidate{marker: p.Close, sym: DelimiterSym(p.Open, p.Close), kind: KindClosing, emits: true})
	}

	sort.SliceStable(d.candidates, func(i, j int) bool {
		return len(d.candidates[i].marker) > len(d.candidates[j].marker)
	})

	return d
}

// Language returns the language identifier.
func (d *Definition) Language() string { return d.name }

// Interest returns the set of marker bytes this language reacts to.
func (d *Definition) Interest() ByteSet { return d.interest }

// Step implements the transition function over the compiled table.
func (d *Definition) Step(st State, tok Token, look Lookahead, escaped bool, emit func(Match)) State {
	if escaped {
		return st
	}

	if st.IsNormal() {
		for _, c := range d.candidates {
			if !matchesMarker(tok, look, c.marker) {
				continue
			}
			look.Skip(len(c.marker) - 1)
			if c.emits {
				emit(Match{Kind: c.kind, Sym: c.sym, Col: tok.Col, Height: HeightNone})
			}
			return c.next
		}
		return st
	}

	// Inside a construct only its terminator is acted on; everything
	// else is inert text. Line comments terminate at the newline, which
	// the parser handles.
	if st.Kind == StateInLineComment || !matchesMarker(tok, look, st.Close) {
		return st
	}
	look.Skip(len(st.Close) - 1)

	switch st.Kind {
	case StateInBlockComment:
		emit(Match{Kind: KindClosing, Sym: BlockCommentSym(st.Open, st.Close), Col: tok.Col, Height: HeightNone})
	case StateInInlineSpan:
		emit(Match{Kind: KindClosing, Sym: InlineSpanSym(st.Span, st.Open, st.Close), Col: tok.Col, Height: HeightNone})
	case StateInBlockSpan:
		emit(Match{Kind: KindClosing, Sym: BlockSpanSym(st.Span, st.Open, st.Close), Col: tok.Col, Height: HeightNone})
	}
	// Strings close without emitting: only delimiters and comment/span
	// markers are navigable.
	return State{}
}

// matchesMarker reports whether marker occurs at tok, using lookahead
// for the remaining bytes. Columns must be strictly adjacent, which
// also prevents a marker from straddling skipped text or a line
// boundary.
func matchesMarker(tok Token, look Lookahead, marker string) bool {
	if len(marker) == 0 || tok.Byte != marker[0] {
		return false
	}
	for i := 1; i < len(marker); i++ {
		next, ok := look.Peek(i)
		if !ok || next.Byte != marker[i] || next.Col != tok.Col+i {
			return false
		}
	}
	return true
}

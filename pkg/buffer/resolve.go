package buffer

import "github.com/yaklabco/pairlex/pkg/lexer"

// matchRef addresses one match inside the line-indexed storage. The
// resolution stack holds references rather than pointers so that
// popping and marking-unmatched is plain index bookkeeping.
type matchRef struct {
	line int
	idx  int
}

// resolveHeights processes every line's matches in document order as
// one stream, assigning nesting depths to paired delimiters and
// HeightNone to strays. Only delimiter matches participate; comment and
// span matches keep HeightNone permanently.
//
// A mismatched closing pairs with the nearest compatible opener on the
// stack and everything pushed above that opener is marked unmatched
// ("closest-match wins"). The same policy applies in both directions;
// the question of preferring the furthest opener for runs of mismatched
// openings is deliberately left as-is (see DESIGN.md).
func (b *Buffer) resolveHeights() {
	var stack []matchRef

	for line, matches := range b.matchesByLine {
		for idx := range matches {
			m := &matches[idx]
			if m.Sym.Class != lexer.ClassDelimiter {
				continue
			}

			if m.Kind == lexer.KindOpening {
				stack = append(stack, matchRef{line: line, idx: idx})
				continue
			}

			// Closing delimiter: scan the stack top-down for the
			// nearest compatible opener.
			paired := false
			for i := len(stack) - 1; i >= 0; i-- {
				opening := b.at(stack[i])
				if opening.Sym != m.Sym {
					continue
				}

				// Everything above the pair was skipped over by the
				// mismatch and can never pair.
				for _, skipped := range stack[i+1:] {
					b.at(skipped).Height = lexer.HeightNone
				}

				opening.Height = i
				m.Height = i
				stack = stack[:i]
				paired = true
				break
			}
			if !paired {
				m.Height = lexer.HeightNone
			}
		}
	}

	// Whatever is still open at end of input is unmatched.
	for _, ref := range stack {
		b.at(ref).Height = lexer.HeightNone
	}
}

func (b *Buffer) at(ref matchRef) *lexer.Match {
	return &b.matchesByLine[ref.line][ref.idx]
}

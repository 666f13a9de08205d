// Package indent computes per-line indentation widths for indent-guide
// rendering. It is independent of the matching engine: a pure function
// from raw text to one width per line.
package indent

// Widths returns the indentation width of every line: spaces count as
// 1, tabs count as tabWidth, saturating at 255. Counting stops at the
// first non-whitespace byte; the rest of the line is irrelevant.
//
// A blank or whitespace-only line yields the width of its own
// whitespace run. Nothing carries over between lines.
func Widths(lines []string, tabWidth uint8) []uint8 {
	widths := make([]uint8, len(lines))
	for i, line := range lines {
		widths[i] = lineWidth(line, tabWidth)
	}
	return widths
}

func lineWidth(line string, tabWidth uint8) uint8 {
	var w uint8
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			w = satAdd(w, 1)
		case '\t':
			w = satAdd(w, tabWidth)
		default:
			return w
		}
	}
	return w
}

func satAdd(a, b uint8) uint8 {
	if sum := a + b; sum >= a {
		return sum
	}
	return 255
}

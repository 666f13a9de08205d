package pretty

import (
	"fmt"
	"strings"
)

// Finding is one unmatched delimiter reported by a scan.
type Finding struct {
	// FilePath is the scanned file.
	FilePath string

	// Line and Col are the 0-based position of the delimiter.
	Line int
	Col  int

	// Marker is the delimiter text, e.g. ")".
	Marker string

	// Kind is "opening" or "closing".
	Kind string
}

// FormatFinding formats a single finding for terminal output, with an
// optional source-context line and caret. Positions are printed
// 1-based.
func (s *Styles) FormatFinding(f Finding, sourceLine string, maxWidth int) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(f.FilePath),
		f.Line+1,
		f.Col+1,
	)

	message := fmt.Sprintf("unmatched %s delimiter %s",
		f.Kind,
		s.Marker.Render(f.Marker),
	)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(message),
	))

	if sourceLine != "" {
		builder.WriteString(s.formatSourceContext(sourceLine, f.Col, maxWidth))
	}

	return builder.String()
}

// formatSourceContext renders the source line with a caret under the
// offending column, truncated to the terminal width.
func (s *Styles) formatSourceContext(line string, col, maxWidth int) string {
	const indent = "        "

	if maxWidth > len(indent)+1 && len(line) > maxWidth-len(indent) {
		line = line[:maxWidth-len(indent)]
	}

	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")
	if col >= 0 && col < len(line) {
		builder.WriteString(indent + strings.Repeat(" ", col) + s.Caret.Render("^") + "\n")
	}
	return builder.String()
}

// FormatFileHeader formats a per-file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	if findingCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d unmatched)", findingCount))
	}
	return header
}

// FormatSummary formats the end-of-run summary line.
func (s *Styles) FormatSummary(files, findings int) string {
	if findings == 0 {
		return s.Success.Render(fmt.Sprintf("✓ %d file(s) scanned, all delimiters matched", files))
	}
	return s.Failure.Render(fmt.Sprintf("✗ %d file(s) scanned, %d unmatched delimiter(s)", files, findings))
}

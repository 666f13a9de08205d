package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/pairlex/internal/ui/pretty"
)

func TestFormatFinding_Basic(t *testing.T) {
	styles := pretty.NewStyles(false) // No colors for easier testing

	f := pretty.Finding{
		FilePath: "main.c",
		Line:     2,
		Col:      4,
		Marker:   ")",
		Kind:     "closing",
	}

	result := styles.FormatFinding(f, "", 120)

	assert.Contains(t, result, "main.c:3:5") // 1-based display
	assert.Contains(t, result, "error")
	assert.Contains(t, result, "unmatched closing delimiter )")
}

func TestFormatFinding_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	f := pretty.Finding{
		FilePath: "main.c",
		Line:     0,
		Col:      3,
		Marker:   "{",
		Kind:     "opening",
	}

	result := styles.FormatFinding(f, "if ( {", 120)

	assert.Contains(t, result, "if ( {")
	assert.Contains(t, result, "^")

	// The caret sits under the offending column.
	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	caretLine := lines[len(lines)-1]
	assert.Equal(t, "^", strings.TrimLeft(caretLine, " "))
	assert.Equal(t, 8+3, strings.Index(caretLine, "^"))
}

func TestFormatFinding_CaretOmittedOutsideLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	f := pretty.Finding{FilePath: "main.c", Col: 50, Marker: "(", Kind: "opening"}
	result := styles.FormatFinding(f, "short", 120)

	assert.Contains(t, result, "short")
	assert.NotContains(t, result, "^")
}

func TestFormatFinding_TruncatesLongLines(t *testing.T) {
	styles := pretty.NewStyles(false)

	long := strings.Repeat("x", 500)
	f := pretty.Finding{FilePath: "main.c", Col: 0, Marker: "(", Kind: "opening"}
	result := styles.FormatFinding(f, long, 80)

	for _, line := range strings.Split(result, "\n") {
		assert.LessOrEqual(t, len(line), 80)
	}
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	header := styles.FormatFileHeader("src/main.c", 3)
	assert.Contains(t, header, "src/main.c")
	assert.Contains(t, header, "(3 unmatched)")

	header = styles.FormatFileHeader("src/ok.c", 0)
	assert.Equal(t, "src/ok.c", header)
}

func TestFormatSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	clean := styles.FormatSummary(5, 0)
	assert.Contains(t, clean, "5 file(s) scanned")
	assert.Contains(t, clean, "all delimiters matched")

	dirty := styles.FormatSummary(2, 7)
	assert.Contains(t, dirty, "2 file(s) scanned")
	assert.Contains(t, dirty, "7 unmatched delimiter(s)")
}

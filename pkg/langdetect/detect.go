// Package langdetect maps files onto the engine's language
// identifiers. It uses go-enry to detect the language from the file
// name and contents, then normalizes go-enry's names to the identifiers
// the lexer registers.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/pairlex/pkg/lexer"
)

// enryNames maps go-enry language names that do not lowercase cleanly
// onto engine identifiers.
//
//nolint:gochecknoglobals // Static lookup table
var enryNames = map[string]string{
	"C++":        "cpp",
	"Vim Script": "vim",
	"Shell":      "shell",
	"TSX":        "typescript",
	"PLpgSQL":    "sql",
	"PLSQL":      "sql",
	"TeX":        "tex",
}

// Detect returns the engine language identifier for a file, or "" when
// the detected language has no registered matcher.
func Detect(path string, content []byte) string {
	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == "" {
		return ""
	}
	return engineID(normalize(lang))
}

// DetectByContent classifies content without a useful file name, e.g.
// an unsaved editor buffer. Shebangs are checked first, then the
// classifier restricted to the languages the engine knows.
func DetectByContent(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return engineID(normalize(lang))
	}

	candidates := []string{
		"C", "C++", "Go", "Rust", "Python", "JavaScript", "TypeScript",
		"JSON", "Lua", "Markdown", "SQL", "Vim Script", "TeX", "Shell",
		"YAML", "TOML", "Zig",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return engineID(normalize(lang))
	}
	return ""
}

// normalize converts a go-enry language name to an engine identifier
// candidate.
func normalize(lang string) string {
	if id, ok := enryNames[lang]; ok {
		return id
	}
	return strings.ToLower(lang)
}

// engineID validates a candidate against the registered languages.
func engineID(id string) string {
	if _, ok := lexer.Lookup(id); !ok {
		return ""
	}
	return id
}

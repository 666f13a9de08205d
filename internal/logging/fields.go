// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"

	// Scan fields.
	FieldLanguage  = "language"
	FieldTabWidth  = "tab_width"
	FieldLines     = "lines"
	FieldMatches   = "matches"
	FieldUnmatched = "unmatched"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

package cli

import "errors"

// Exit codes for pairlex.
const (
	// ExitSuccess indicates successful execution with no unmatched
	// delimiters.
	ExitSuccess = 0

	// ExitUnmatched indicates the scan completed but found unmatched
	// delimiters.
	ExitUnmatched = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps a command error onto an exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrUnmatchedFound) {
		return ExitUnmatched
	}
	return ExitIOError
}

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrison/pathsearch/internal/matcher"
)

// Process exit codes. They are stable and documented in the help text.
const (
	// ExitMatch means at least one match was printed.
	ExitMatch = 0
	// ExitNoMatch means the scan completed without printing anything.
	ExitNoMatch = 1
	// ExitError means invalid usage, configuration or pattern, or a failure
	// writing output.
	ExitError = 2
)

// ErrNoMatch is returned by the root command when nothing matched.
var ErrNoMatch = errors.New("no matches found")

// UsageError reports malformed command-line input or configuration.
type UsageError struct {
	Err error
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitMatch
	case errors.Is(err, ErrNoMatch):
		return ExitNoMatch
	default:
		return ExitError
	}
}

// isUsageLike reports whether err should be followed by the usage text.
func isUsageLike(err error) bool {
	var usageErr *UsageError
	var patternErr *matcher.PatternError
	return errors.As(err, &usageErr) || errors.As(err, &patternErr)
}

// reportError writes err to w; usage and pattern errors get the usage text too.
func reportError(w io.Writer, err error, usage string) {
	if err == nil || errors.Is(err, ErrNoMatch) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	if isUsageLike(err) {
		fmt.Fprintf(w, "\n%s", usage)
	}
}

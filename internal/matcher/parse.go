package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternError reports a regular expression that failed to compile.
type PatternError struct {
	Pattern string // Expression as supplied by the user
	Err     error  // Underlying regexp error
}

// Error implements the error interface for PatternError.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying regexp error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Parse builds the pattern for a user-supplied string.
//
// Without useRegex the pattern is a plain substring. With useRegex, "^lit" and
// "lit$" where lit contains no regex metacharacters become Prefix and Suffix
// patterns; anything else is compiled as a regular expression.
func Parse(pattern string, useRegex bool) (*Pattern, error) {
	if !useRegex {
		return Substring(pattern), nil
	}

	if rest, ok := strings.CutPrefix(pattern, "^"); ok && isLiteral(rest) {
		return Prefix(rest), nil
	}
	if rest, ok := strings.CutSuffix(pattern, "$"); ok && isLiteral(rest) {
		return Suffix(rest), nil
	}

	return Regex(pattern)
}

// isLiteral reports whether s contains no regex metacharacters.
func isLiteral(s string) bool {
	return regexp.QuoteMeta(s) == s
}

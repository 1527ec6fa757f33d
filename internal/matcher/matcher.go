// Package matcher decides whether a filename matches the user's pattern and
// reports the byte range that matched.
//
// A Pattern is one of a closed set of strategies chosen once at startup:
//
//	MatchAll   no pattern given, everything matches with an empty range
//	Substring  case-sensitive containment, leftmost occurrence
//	Prefix     "^literal" regex, compared directly against the start of the name
//	Suffix     "literal$" regex, compared directly against the end of the name
//	Regex      any other expression, compiled with the RE2 engine
//
// Matching operates on the raw bytes of the filename. Go strings carry
// arbitrary bytes, so names that are not valid UTF-8 are matched as-is and
// never rejected or rewritten. The literal strategies compare bytes exactly.
// The regex engine decodes each invalid byte as U+FFFD: such a byte matches
// "." as one character and advances the reported range by one byte, but no
// expression can name a specific invalid byte. `\xff` means the rune U+00FF
// ("ÿ", two bytes in UTF-8) and [\x80-\xff] is a rune class, so neither
// matches a raw 0xff byte.
package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies the matching strategy of a Pattern.
type Kind int

const (
	// KindAll matches every filename.
	KindAll Kind = iota
	// KindSubstring matches names containing the needle.
	KindSubstring
	// KindPrefix matches names starting with the needle.
	KindPrefix
	// KindSuffix matches names ending with the needle.
	KindSuffix
	// KindRegex matches names against a compiled regular expression.
	KindRegex
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindSubstring:
		return "substring"
	case KindPrefix:
		return "prefix"
	case KindSuffix:
		return "suffix"
	case KindRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Range is a half-open span [Start, End) of byte offsets into a filename.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Pattern is an immutable matching strategy. The zero value matches everything.
type Pattern struct {
	kind   Kind
	needle string
	re     *regexp.Regexp
}

// MatchAll returns a pattern that matches every filename with an empty range.
func MatchAll() *Pattern {
	return &Pattern{kind: KindAll}
}

// Substring returns a case-sensitive containment pattern.
func Substring(needle string) *Pattern {
	return &Pattern{kind: KindSubstring, needle: needle}
}

// Prefix returns a pattern anchored at the start of the filename.
func Prefix(needle string) *Pattern {
	return &Pattern{kind: KindPrefix, needle: needle}
}

// Suffix returns a pattern anchored at the end of the filename.
func Suffix(needle string) *Pattern {
	return &Pattern{kind: KindSuffix, needle: needle}
}

// Regex compiles expr into a general regular expression pattern.
// It returns a *PatternError if expr does not compile.
func Regex(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: expr, Err: err}
	}
	return &Pattern{kind: KindRegex, needle: expr, re: re}, nil
}

// Kind returns the strategy selected for this pattern.
func (p *Pattern) Kind() Kind {
	return p.kind
}

// String describes the pattern for diagnostics, e.g. `prefix "vim"`.
func (p *Pattern) String() string {
	if p.kind == KindAll {
		return p.kind.String()
	}
	return fmt.Sprintf("%s %q", p.kind, p.needle)
}

// Match reports whether name matches and, if so, the byte range that matched.
// For Substring and Regex the leftmost match is reported.
func (p *Pattern) Match(name string) (Range, bool) {
	switch p.kind {
	case KindSubstring:
		i := strings.Index(name, p.needle)
		if i < 0 {
			return Range{}, false
		}
		return Range{Start: i, End: i + len(p.needle)}, true
	case KindPrefix:
		if !strings.HasPrefix(name, p.needle) {
			return Range{}, false
		}
		return Range{Start: 0, End: len(p.needle)}, true
	case KindSuffix:
		if !strings.HasSuffix(name, p.needle) {
			return Range{}, false
		}
		return Range{Start: len(name) - len(p.needle), End: len(name)}, true
	case KindRegex:
		loc := p.re.FindStringIndex(name)
		if loc == nil {
			return Range{}, false
		}
		return Range{Start: loc[0], End: loc[1]}, true
	default:
		return Range{}, true
	}
}

// Package scanner walks the directories of a search path in precedence order
// and reports every executable whose name matches a pattern, flagging the
// ones hidden behind an earlier file of the same name.
//
// Directories are scanned one at a time, each fully read and closed before the
// next is opened. Within a directory, entries are reported in whatever order
// the operating system returns them; no sorting is applied, so results from a
// single directory are generally not alphabetical.
//
// Directories that are missing, not directories, or unreadable are skipped
// without error, as are entries that cannot be stat'ed. Stale PATH entries are
// common and never abort a scan.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/pathsearch/internal/matcher"
)

// Logger receives scan diagnostics: skipped directories at debug level and
// individual candidates at trace level.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
}

// Candidate is a directory entry discovered while listing a search path entry.
type Candidate struct {
	Dir  string // Absolute directory the entry was found in
	Name string // Raw filename; not guaranteed to be valid UTF-8
	Path string // Absolute path, Dir joined with Name
}

// Result is a matching executable candidate.
type Result struct {
	Candidate
	// PathIndex is the position of the originating entry in the search path.
	PathIndex int
	// Match is the byte range of Name matched by the pattern.
	Match matcher.Range
	// Shadowed is true when a file with the same name was reported earlier
	// in the scan, i.e. from a directory with higher precedence.
	Shadowed bool
}

// Summary describes a completed scan.
type Summary struct {
	Dirs     int // Search path entries visited
	Skipped  int // Entries that could not be listed
	Matches  int // Results emitted
	Shadowed int // Results emitted with Shadowed set
}

// EmitFunc receives results in scan order. Returning an error stops the scan.
type EmitFunc func(Result) error

// Scanner matches directory entries against a single pattern.
type Scanner struct {
	pattern      *matcher.Pattern
	logger       Logger
	isExecutable func(path string) bool
	openDir      func(name string) (*os.File, error)
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used for scan diagnostics.
func WithLogger(l Logger) Option {
	return func(s *Scanner) {
		s.logger = l
	}
}

// WithExecutableCheck replaces the platform executability check.
func WithExecutableCheck(fn func(path string) bool) Option {
	return func(s *Scanner) {
		s.isExecutable = fn
	}
}

// New creates a Scanner for pattern. A nil pattern matches everything.
func New(pattern *matcher.Pattern, opts ...Option) *Scanner {
	if pattern == nil {
		pattern = matcher.MatchAll()
	}
	s := &Scanner{
		pattern:      pattern,
		isExecutable: isExecutable,
		openDir:      os.Open,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan visits dirs in order and calls emit for every matching executable.
// The set of names already reported is local to this call, so a Scanner may
// be reused and each scan is independent.
func (s *Scanner) Scan(dirs []string, emit EmitFunc) (Summary, error) {
	var summary Summary
	seen := make(map[string]struct{})

	for i, entry := range dirs {
		summary.Dirs++

		dir, names, err := s.list(entry)
		if err != nil && len(names) == 0 {
			summary.Skipped++
			s.debugf("skipping %q: %v", entry, err)
			continue
		}
		if err != nil {
			// Entries read before the error are still scanned.
			s.debugf("partial listing of %q: %v", entry, err)
		}

		for _, name := range names {
			match, ok := s.pattern.Match(name)
			if !ok {
				continue
			}

			path := filepath.Join(dir, name)
			if !s.isExecutable(path) {
				s.tracef("discarding %q: not an executable file", path)
				continue
			}

			_, shadowed := seen[name]
			if !shadowed {
				seen[name] = struct{}{}
			}

			s.tracef("match %q range [%d,%d) shadowed=%t", path, match.Start, match.End, shadowed)
			result := Result{
				Candidate: Candidate{Dir: dir, Name: name, Path: path},
				PathIndex: i,
				Match:     match,
				Shadowed:  shadowed,
			}
			if err := emit(result); err != nil {
				return summary, fmt.Errorf("emit %s: %w", path, err)
			}

			summary.Matches++
			if shadowed {
				summary.Shadowed++
			}
		}
	}

	return summary, nil
}

// list returns the resolved directory and its entry names in OS order.
// The directory handle is closed before returning.
func (s *Scanner) list(entry string) (string, []string, error) {
	dir, err := resolveDir(entry)
	if err != nil {
		return "", nil, fmt.Errorf("resolve directory: %w", err)
	}

	f, err := s.openDir(dir)
	if err != nil {
		return dir, nil, err
	}
	defer f.Close()

	// (*os.File).ReadDir does not sort, unlike os.ReadDir.
	entries, err := f.ReadDir(-1)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if err != nil {
		return dir, names, fmt.Errorf("read directory: %w", err)
	}
	return dir, names, nil
}

func (s *Scanner) tracef(format string, args ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.LogTrace(fmt.Sprintf(format, args...))
}

func (s *Scanner) debugf(format string, args ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.LogDebug(fmt.Sprintf(format, args...))
}

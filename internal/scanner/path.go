package scanner

import (
	"errors"
	"os"
	"path/filepath"
)

// PathEnv is the environment variable holding the search path.
const PathEnv = "PATH"

// ErrMissingPath indicates the search path variable is unset or empty.
var ErrMissingPath = errors.New("scanner: PATH is unset or empty")

// SearchPathFromEnv reads PATH and splits it into ordered directory entries.
func SearchPathFromEnv() ([]string, error) {
	return SplitSearchPath(os.Getenv(PathEnv))
}

// SplitSearchPath splits a search path on the platform list separator
// (':' on Unix, ';' on Windows). Order is preserved, as are empty segments,
// which stand for the current directory.
func SplitSearchPath(value string) ([]string, error) {
	if value == "" {
		return nil, ErrMissingPath
	}
	return filepath.SplitList(value), nil
}

// resolveDir returns the absolute form of a search path entry.
// An empty entry means the current directory.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	return filepath.Abs(dir)
}

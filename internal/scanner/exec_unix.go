//go:build unix

package scanner

import (
	"os"

	"golang.org/x/sys/unix"
)

// isExecutable reports whether path is a file the current user may execute.
// Symlinks are followed; directories never qualify even though they carry
// the search bit.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}

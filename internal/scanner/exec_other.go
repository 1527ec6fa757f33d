//go:build !unix && !windows

package scanner

import "os"

// isExecutable falls back to the permission bits where access(2) is unavailable.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

//go:build windows

package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// executableExts mirrors the default PATHEXT list.
var executableExts = map[string]bool{
	".com": true,
	".exe": true,
	".bat": true,
	".cmd": true,
}

// isExecutable reports whether path names an existing non-directory file
// with an executable extension.
func isExecutable(path string) bool {
	if !executableExts[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

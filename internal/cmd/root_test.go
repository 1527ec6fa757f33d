//go:build unix

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config lookup at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(t.TempDir(), "none"))
	t.Setenv("NO_COLOR", "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func executable(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
		require.NoError(t, os.Chmod(path, 0o755))
	}
}

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestRootCommandHelp(t *testing.T) {
	isolate(t)
	out, errOut, code := runCLI(t, "--help")

	assert.Equal(t, ExitMatch, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "pathsearch")
	assert.Contains(t, out, "--regex")
	assert.Contains(t, out, "--color")
	assert.Contains(t, out, "Exit codes")
}

func TestRootCommandShortHelp(t *testing.T) {
	isolate(t)
	out, _, code := runCLI(t, "-h")
	assert.Equal(t, ExitMatch, code)
	assert.Contains(t, out, "Look for files in PATH")
}

func TestVersionFlag(t *testing.T) {
	isolate(t)
	for _, flag := range []string{"--version", "-V"} {
		t.Run(flag, func(t *testing.T) {
			t.Setenv("PATH", "")
			out, _, code := runCLI(t, flag)
			assert.Equal(t, ExitMatch, code)
			assert.Equal(t, "pathsearch "+Version+"\n", out)
		})
	}
}

func TestPython3Shadowing(t *testing.T) {
	isolate(t)
	local, usr := t.TempDir(), t.TempDir()
	executable(t, local, "python3")
	executable(t, usr, "python3")
	t.Setenv("PATH", local+string(os.PathListSeparator)+usr)

	out, errOut, code := runCLI(t, "--color", "never", "python3")

	assert.Equal(t, ExitMatch, code)
	assert.Empty(t, errOut)
	assert.Equal(t, filepath.Join(local, "python3")+"\n"+filepath.Join(usr, "python3")+"\n", out)
}

func TestMissingDirectoryIsSilent(t *testing.T) {
	isolate(t)
	good := t.TempDir()
	executable(t, good, "foo")
	missing := filepath.Join(t.TempDir(), "gone")
	t.Setenv("PATH", missing+string(os.PathListSeparator)+good)

	out, errOut, code := runCLI(t, "foo")

	assert.Equal(t, ExitMatch, code)
	assert.Empty(t, errOut)
	assert.Equal(t, filepath.Join(good, "foo")+"\n", out)
}

func TestRegexPrefixScenario(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	executable(t, dir, "vim", "rvim", "vimdiff")
	t.Setenv("PATH", dir)

	out, _, code := runCLI(t, "-r", "^vim")

	assert.Equal(t, ExitMatch, code)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.ElementsMatch(t, []string{filepath.Join(dir, "vim"), filepath.Join(dir, "vimdiff")}, lines)
}

func TestEmptyPath(t *testing.T) {
	isolate(t)
	t.Setenv("PATH", "")

	out, errOut, code := runCLI(t, "ls")

	assert.Equal(t, ExitNoMatch, code)
	assert.Empty(t, out)
	assert.NotContains(t, errOut, "Error:")
}

func TestNoPatternListsEverything(t *testing.T) {
	isolate(t)
	a, b := t.TempDir(), t.TempDir()
	executable(t, a, "ls")
	executable(t, b, "ls", "cat")
	require.NoError(t, os.WriteFile(filepath.Join(b, "README"), nil, 0o644))
	t.Setenv("PATH", a+string(os.PathListSeparator)+b)

	out, _, code := runCLI(t)

	assert.Equal(t, ExitMatch, code)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, filepath.Join(a, "ls"), lines[0])
	assert.ElementsMatch(t, []string{filepath.Join(b, "ls"), filepath.Join(b, "cat")}, lines[1:])
}

func TestNoMatchExitCode(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	executable(t, dir, "ls")
	t.Setenv("PATH", dir)

	out, errOut, code := runCLI(t, "definitely-not-here")

	assert.Equal(t, ExitNoMatch, code)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown flag", args: []string{"--bogus"}, wantErr: "unknown flag"},
		{name: "invalid color", args: []string{"--color", "sometimes", "ls"}, wantErr: "invalid color option"},
		{name: "invalid color equals form", args: []string{"--color=sometimes"}, wantErr: "invalid color option"},
		{name: "missing color value", args: []string{"--color"}, wantErr: "needs an argument"},
		{name: "two patterns", args: []string{"a", "b"}, wantErr: "multiple patterns"},
		{name: "invalid regex", args: []string{"-r", "("}, wantErr: "invalid regex pattern"},
		{name: "invalid log level", args: []string{"--log-level", "loud", "ls"}, wantErr: "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			dir := t.TempDir()
			executable(t, dir, "ls")
			t.Setenv("PATH", dir)

			out, errOut, code := runCLI(t, tt.args...)

			assert.Equal(t, ExitError, code)
			assert.Empty(t, out, "nothing is scanned on usage errors")
			assert.Contains(t, errOut, tt.wantErr)
			assert.Contains(t, errOut, "Usage:")
		})
	}
}

func TestColorAlwaysHighlights(t *testing.T) {
	isolate(t)
	a, b := t.TempDir(), t.TempDir()
	executable(t, a, "python3")
	executable(t, b, "python3")
	t.Setenv("PATH", a+string(os.PathListSeparator)+b)

	out, _, code := runCLI(t, "--color=always", "python")

	assert.Equal(t, ExitMatch, code)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "\x1b[")
	assert.NotEqual(t, strings.Replace(lines[0], a, b, 1), lines[1], "shadowed line must be styled differently")
}

func TestColorAutoIsOffForNonTerminal(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	executable(t, dir, "ls")
	t.Setenv("PATH", dir)

	out, _, _ := runCLI(t, "ls")
	assert.NotContains(t, out, "\x1b[")
}

func TestConfigFileDefaults(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	executable(t, dir, "vim", "rvim")
	t.Setenv("PATH", dir)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("regex: true\n"), 0o644))

	out, _, code := runCLI(t, "--config", cfgPath, "^vim")
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, filepath.Join(dir, "vim")+"\n", out)

	// An explicit flag beats the file.
	out, _, code = runCLI(t, "--config", cfgPath, "--regex=false", "^vim")
	assert.Equal(t, ExitNoMatch, code)
	assert.Empty(t, out)
}

func TestInvalidConfigFile(t *testing.T) {
	isolate(t)
	t.Setenv("PATH", t.TempDir())
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("color: plaid\n"), 0o644))

	_, errOut, code := runCLI(t, "--config", cfgPath)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "invalid color option")
}

func TestDebugLoggingGoesToStderr(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	executable(t, dir, "ls")
	missing := filepath.Join(t.TempDir(), "gone")
	t.Setenv("PATH", missing+string(os.PathListSeparator)+dir)

	out, errOut, code := runCLI(t, "--log-level", "debug", "ls")

	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, filepath.Join(dir, "ls")+"\n", out)
	assert.Contains(t, errOut, "[DEBUG] pattern: substring")
	assert.Contains(t, errOut, "skipping")
	assert.Contains(t, errOut, "1 matches")
}

func TestInfoLoggingShowsSummaryOnly(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	executable(t, dir, "ls")
	t.Setenv("PATH", dir)

	_, errOut, code := runCLI(t, "--log-level", "info", "ls")

	assert.Equal(t, ExitMatch, code)
	assert.Contains(t, errOut, "[INFO] scanned 1 directories (0 skipped): 1 matches, 0 shadowed")
	assert.NotContains(t, errOut, "[DEBUG]")
}

func TestTraceLoggingReportsCandidates(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	executable(t, dir, "ls")
	t.Setenv("PATH", dir)

	_, traceOut, _ := runCLI(t, "--log-level", "trace", "ls")
	_, debugOut, _ := runCLI(t, "--log-level", "debug", "ls")

	assert.Contains(t, traceOut, "[TRACE] match")
	assert.Contains(t, traceOut, filepath.Join(dir, "ls"))
	assert.NotContains(t, debugOut, "[TRACE]")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteFailureIsLoggedAsError(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	executable(t, dir, "ls")
	t.Setenv("PATH", dir)

	var stderr bytes.Buffer
	code := Execute([]string{"ls"}, brokenWriter{}, &stderr)

	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr.String(), "[ERROR] write output failed after 0 matches")
	assert.Contains(t, stderr.String(), "broken pipe")
}

func TestOutputIsIdempotent(t *testing.T) {
	isolate(t)
	a, b := t.TempDir(), t.TempDir()
	executable(t, a, "one", "two", "three")
	executable(t, b, "two", "four")
	t.Setenv("PATH", a+string(os.PathListSeparator)+b)

	first, _, _ := runCLI(t)
	second, _, _ := runCLI(t)
	assert.Equal(t, first, second)
}

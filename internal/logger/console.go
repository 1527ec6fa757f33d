// Package logger provides leveled diagnostic output for pathsearch.
//
// Diagnostics go to standard error so they never mix with the result lines
// written to standard output. Messages below the configured level are
// dropped. Levels, most verbose first:
//
//	trace  every matched candidate, kept or discarded
//	debug  chosen pattern strategy and skipped directories
//	info   run summary
//	warn   missing PATH (default level)
//	error  failure writing results
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level orders diagnostics by severity.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// DefaultLevel is used when no level or an unknown level is configured.
const DefaultLevel = "warn"

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

var levelColors = [...]color.Attribute{color.FgHiBlack, color.FgCyan, color.FgBlue, color.FgYellow, color.FgRed}

// String returns the lowercase level name.
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel converts a level name (case-insensitive, surrounding space
// ignored) into a Level.
func ParseLevel(name string) (Level, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == normalized {
			return Level(i), true
		}
	}
	return LevelWarn, false
}

// IsValidLevel reports whether name is a known log level.
func IsValidLevel(name string) bool {
	_, ok := ParseLevel(name)
	return ok
}

// ConsoleLogger writes "pathsearch: [LEVEL] message" lines to a writer.
// It is not safe for concurrent use; pathsearch logs from a single goroutine.
type ConsoleLogger struct {
	writer      io.Writer
	level       Level
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to writer. A nil writer
// discards everything. Unknown or empty levels fall back to DefaultLevel.
// Level tags are colored when writer is a terminal.
func NewConsoleLogger(writer io.Writer, level string) *ConsoleLogger {
	parsed, _ := ParseLevel(level)
	return &ConsoleLogger{
		writer:      writer,
		level:       parsed,
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether w is a terminal and NO_COLOR is empty.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Enabled reports whether messages at l are written.
func (cl *ConsoleLogger) Enabled(l Level) bool {
	return cl.writer != nil && l >= cl.level
}

func (cl *ConsoleLogger) LogTrace(message string) { cl.log(LevelTrace, message) }
func (cl *ConsoleLogger) LogDebug(message string) { cl.log(LevelDebug, message) }
func (cl *ConsoleLogger) LogInfo(message string)  { cl.log(LevelInfo, message) }
func (cl *ConsoleLogger) LogWarn(message string)  { cl.log(LevelWarn, message) }
func (cl *ConsoleLogger) LogError(message string) { cl.log(LevelError, message) }

func (cl *ConsoleLogger) log(l Level, message string) {
	if !cl.Enabled(l) {
		return
	}

	tag := strings.ToUpper(l.String())
	if cl.colorOutput {
		c := color.New(levelColors[l])
		c.EnableColor()
		tag = c.Sprint(tag)
	}
	fmt.Fprintf(cl.writer, "pathsearch: [%s] %s\n", tag, message)
}

package config

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorMode controls when highlighted output is produced.
// It implements pflag.Value so it can back the --color flag directly.
type ColorMode string

const (
	// ColorAuto colors output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors output regardless of the destination.
	ColorAlways ColorMode = "always"
	// ColorNever disables color output.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return "", fmt.Errorf("invalid color option %q, use 'auto', 'always', or 'never'", s)
	}
}

// String implements pflag.Value.
func (m *ColorMode) String() string {
	return string(*m)
}

// Set implements pflag.Value.
func (m *ColorMode) Set(s string) error {
	parsed, err := ParseColorMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *ColorMode) Type() string {
	return "WHEN"
}

// Enabled resolves the mode for an output stream. Auto enables color only
// when f is a terminal and NO_COLOR is empty.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

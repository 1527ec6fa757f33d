// Package display renders scan results as output lines.
//
// Each result is written as its full path on a line of its own. With color
// enabled, the directory part is dimmed and the matched range of the filename
// is highlighted in bold red. Shadowed results use a subdued variant of every
// style, with the match in dimmed red, so the winning match stands out.
//
// Filenames are written byte for byte. Nothing is escaped or sanitized.
package display

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/pathsearch/internal/scanner"
)

// style holds the colors for one kind of result line.
type style struct {
	dir   *color.Color
	name  *color.Color
	match *color.Color
}

// Printer writes results to an output stream.
type Printer struct {
	out      io.Writer
	winner   style
	shadowed style
}

// NewPrinter creates a Printer writing to out. The color decision is made
// here, once, independent of fatih/color's global terminal detection.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	p := &Printer{
		out: out,
		winner: style{
			dir:   color.New(color.Faint),
			name:  color.New(color.Reset),
			match: color.New(color.Bold, color.FgRed),
		},
		shadowed: style{
			dir:   color.New(color.Faint),
			name:  color.New(color.FgHiBlack),
			match: color.New(color.FgRed, color.Faint),
		},
	}

	for _, c := range []*color.Color{
		p.winner.dir, p.winner.name, p.winner.match,
		p.shadowed.dir, p.shadowed.name, p.shadowed.match,
	} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes one result line.
func (p *Printer) Print(r scanner.Result) error {
	_, err := io.WriteString(p.out, p.Format(r))
	return err
}

// Format returns the line for r, including the trailing newline.
func (p *Printer) Format(r scanner.Result) string {
	st := p.winner
	if r.Shadowed {
		st = p.shadowed
	}

	dir, name := splitPath(r.Path, r.Name)

	var sb strings.Builder
	sb.WriteString(paint(st.dir, dir))

	start, end := r.Match.Start, r.Match.End
	if r.Match.Empty() || start < 0 || end > len(name) {
		sb.WriteString(paint(st.name, name))
	} else {
		sb.WriteString(paint(st.name, name[:start]))
		sb.WriteString(paint(st.match, name[start:end]))
		sb.WriteString(paint(st.name, name[end:]))
	}

	sb.WriteByte('\n')
	return sb.String()
}

// splitPath separates path into its directory part (with the trailing
// separator) and the filename part.
func splitPath(path, name string) (string, string) {
	if name != "" && strings.HasSuffix(path, name) {
		return path[:len(path)-len(name)], name
	}
	dir, file := filepath.Split(path)
	return dir, file
}

// paint colors s, leaving empty segments without escape codes.
func paint(c *color.Color, s string) string {
	if s == "" {
		return ""
	}
	return c.Sprint(s)
}

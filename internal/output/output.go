// Package output provides consistent CLI output: matching lines on stdout,
// optional match highlighting, and icon-prefixed diagnostics.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Span is a [Start, End) byte range inside a line.
type Span struct {
	Start int
	End   int
}

// Writer provides formatted output for CLI.
type Writer struct {
	out       io.Writer
	useColor  bool
	highlight lipgloss.Style
}

// Option configures a Writer.
type Option func(*Writer)

// WithColor enables match highlighting according to mode.
func WithColor(mode ColorMode) Option {
	return func(w *Writer) {
		w.useColor = colorEnabled(mode, w.out)
		if !w.useColor {
			return
		}
		r := lipgloss.NewRenderer(w.out)
		if mode == ColorAlways {
			r.SetColorProfile(termenv.ANSI256)
		}
		w.highlight = HighlightStyle(r)
	}
}

// New creates a new output Writer. Color is off unless WithColor says otherwise.
func New(out io.Writer, opts ...Option) *Writer {
	w := &Writer{out: out}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// UseColor reports whether matches are highlighted.
func (w *Writer) UseColor() bool {
	return w.useColor
}

// Line writes s followed by a newline.
func (w *Writer) Line(s string) error {
	_, err := fmt.Fprintln(w.out, s)
	return err
}

// Match writes line with each span highlighted.
// Spans must be sorted, non-overlapping and within the line.
func (w *Writer) Match(line string, spans []Span) error {
	if !w.useColor || len(spans) == 0 {
		return w.Line(line)
	}

	var sb strings.Builder
	prev := 0
	for _, s := range spans {
		sb.WriteString(line[prev:s.Start])
		sb.WriteString(w.highlight.Render(line[s.Start:s.End]))
		prev = s.End
	}
	sb.WriteString(line[prev:])

	return w.Line(sb.String())
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status("⚠️ ", msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

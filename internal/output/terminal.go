package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when matches are highlighted.
type ColorMode string

const (
	// ColorAuto highlights only on an interactive terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways highlights even when piped.
	ColorAlways ColorMode = "always"
	// ColorNever disables highlighting.
	ColorNever ColorMode = "never"
)

// Highlight palette, shared with the lime accent of the status styles.
const (
	ColorLime = "154"
)

// ParseColorMode parses a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("color must be 'auto', 'always', or 'never', got %q", s)
	}
}

// HighlightStyle returns the style used for matched text.
func HighlightStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorLime)).
		TabWidth(lipgloss.NoTabConversion)
}

func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorAuto:
		return IsTTY(w) && !DetectNoColor() && !DetectCI()
	default:
		return false
	}
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// DetectCI checks if running in a CI environment.
func DetectCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS"}
	for _, v := range ciVars {
		if _, exists := os.LookupEnv(v); exists {
			return true
		}
	}
	return false
}

// Package styles defines the visual styling for dirsh's terminal output.
//
// All styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. Styling is disabled entirely when stdout is
// not a terminal, so piped output stays plain.
package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the semantic styles used by the shell.
type Styles struct {
	Prompt lipgloss.Style
	Error  lipgloss.Style
	Banner lipgloss.Style
	Dir    lipgloss.Style
}

// Enabled reports whether styled output should be used for stdout.
func Enabled() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns the style set. When enabled is false every style renders
// text unchanged.
func New(enabled bool) Styles {
	if !enabled {
		plain := lipgloss.NewStyle()
		return Styles{Prompt: plain, Error: plain, Banner: plain, Dir: plain}
	}

	return Styles{
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"}),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"}),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Dir: lipgloss.NewStyle().
			Bold(true),
	}
}

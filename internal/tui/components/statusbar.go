package components

import (
	"fmt"

	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. scrollPct is the body
// scroll position in [0,1]; a negative value hides it.
func RenderStatusBar(width int, focus string, scrollPct float64) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [?]help  [t]heme  [q]uit"
	right := focus + " · " + t.Name + " "
	if scrollPct >= 0 {
		right = fmt.Sprintf("%3.0f%% · %s", scrollPct*100, right)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		return style.Render(left)
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}

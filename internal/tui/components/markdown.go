package components

import (
	"strings"
	"sync"

	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdMu        sync.Mutex
	mdRenderers = map[int]*glamour.TermRenderer{}
)

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	mdMu.Lock()
	defer mdMu.Unlock()

	if r, ok := mdRenderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	mdRenderers[width] = r
	return r, nil
}

// Markdown renders a markdown snippet wrapped to width. Falls back to the
// raw text when the renderer cannot be built.
func Markdown(text string, width int) string {
	if width < 10 {
		width = 10
	}
	r, err := markdownRenderer(width)
	if err == nil {
		if out, err := r.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}

	t := theme.Active
	return lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Width(width).
		Render(strings.TrimSpace(text))
}

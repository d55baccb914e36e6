package components

import (
	"strings"

	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs, one per analysis focus, in focus order.
var Tabs = []Tab{
	{Name: "Market", Key: 'm', KeyPos: 0},
	{Name: "Competition", Key: 'c', KeyPos: 0},
	{Name: "Segments", Key: 's', KeyPos: 0},
	{Name: "Positioning", Key: 'p', KeyPos: 0},
	{Name: "Performance", Key: 'e', KeyPos: 1},
	{Name: "Go-to-Market", Key: 'g', KeyPos: 0},
}

const tabSeparator = "│"

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Background(t.SurfaceHover).
			Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true).Underline(true)
	padStyle := lipgloss.NewStyle().Background(t.Surface)

	name := inactiveStyle.Render(tab.Name)
	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		name = inactiveStyle.Render(tab.Name[:tab.KeyPos]) +
			keyStyle.Render(tab.Name[tab.KeyPos:tab.KeyPos+1]) +
			inactiveStyle.Render(tab.Name[tab.KeyPos+1:])
	}
	return padStyle.Render(" ") + name + padStyle.Render(" ")
}

// TabVisualWidth returns the rendered column width of a tab. Mouse hit
// testing relies on it matching RenderTabBar exactly.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	row := strings.Join(parts, sepStyle.Render(tabSeparator))

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		MaxWidth(width).
		Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
// Digits 1-9 select tabs by position.
func TabIdxByKey(key rune) int {
	if key >= '1' && key <= '9' {
		idx := int(key - '1')
		if idx < len(Tabs) {
			return idx
		}
		return -1
	}
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// Package tui provides the interactive Bubble Tea dashboard for stoki.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/theirongolddev/stoki/internal/config"
	"github.com/theirongolddev/stoki/internal/dataset"
	"github.com/theirongolddev/stoki/internal/tui/components"
	"github.com/theirongolddev/stoki/internal/tui/theme"
	"github.com/theirongolddev/stoki/internal/view"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. It mounts the page rendered for the
// active focus; all content comes from view.Render over fixed tables.
type App struct {
	tables dataset.Tables
	focus  view.Focus
	page   view.Page

	// UI state
	width    int
	height   int
	showHelp bool

	body  viewport.Model
	ready bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	logger *slog.Logger
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	// Sidebar column width in the wide layout, gutter included.
	sidebarWidth = 36

	// Scroll navigation
	wheelStep         = 3 // lines per mouse wheel notch
	minHalfPageScroll = 1 // minimum lines for half-page scroll
	minContentHeight  = 5 // minimum content area height
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates the dashboard model showing focus. A nil logger discards.
func NewApp(tables dataset.Tables, focus view.Focus, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if !focus.Valid() {
		focus = view.MarketOverview
	}
	return App{
		tables: tables,
		focus:  focus,
		page:   view.Render(focus, tables),
		logger: logger,
	}
}

// Focus returns the focus currently on screen.
func (a App) Focus() view.Focus {
	return a.focus
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// setFocus re-renders the page for f and resets scrolling.
func (a *App) setFocus(f view.Focus) {
	if !f.Valid() || f == a.focus {
		return
	}
	a.logger.Debug("focus changed", "from", a.focus.Slug(), "to", f.Slug())
	a.focus = f
	a.page = view.Render(f, a.tables)
	a.relayout()
	a.body.GotoTop()
}

func (a *App) cycleFocus(step int) {
	all := view.All()
	idx := (int(a.focus) + step + len(all)) % len(all)
	a.setFocus(all[idx])
}

func (a *App) cycleTheme() {
	next := theme.Next(theme.Active.Name)
	theme.SetActive(next)
	a.logger.Info("theme changed", "theme", next)
	offset := a.body.YOffset
	a.relayout()
	a.body.SetYOffset(offset)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		offset := a.body.YOffset
		a.relayout()
		a.body.SetYOffset(offset)
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || !a.ready || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scroll(-wheelStep)
			return a, nil

		case tea.MouseButtonWheelDown:
			a.scroll(wheelStep)
			return a, nil

		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress {
				return a, nil
			}
			// Tab bar is the first line.
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.setFocus(view.Focus(tab))
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		halfPage := a.body.Height / 2
		if halfPage < minHalfPageScroll {
			halfPage = minHalfPageScroll
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "t":
			a.cycleTheme()
			return a, nil
		case "left", "shift+tab":
			a.cycleFocus(-1)
			return a, nil
		case "right", "tab":
			a.cycleFocus(1)
			return a, nil
		case "j", "down":
			a.scroll(1)
			return a, nil
		case "k", "up":
			a.scroll(-1)
			return a, nil
		case "ctrl+d", "pgdown":
			a.scroll(halfPage)
			return a, nil
		case "ctrl+u", "pgup":
			a.scroll(-halfPage)
			return a, nil
		case "home":
			a.body.GotoTop()
			return a, nil
		case "G", "end":
			a.body.GotoBottom()
			return a, nil
		}

		if runes := []rune(key); len(runes) == 1 {
			if idx := components.TabIdxByKey(runes[0]); idx >= 0 {
				a.setFocus(view.Focus(idx))
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a *App) scroll(lines int) {
	a.body.SetYOffset(a.body.YOffset + lines)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// headerHeight is the tab bar plus the title row.
const headerHeight = 2

// statusHeight is the status bar.
const statusHeight = 1

// bodyWidth is the width of the scrolling region.
func (a App) bodyWidth() int {
	cw := a.contentWidth()
	if a.isCompactLayout() {
		return cw
	}
	return cw - sidebarWidth
}

// relayout resizes the body viewport and refills it with the mounted page.
func (a *App) relayout() {
	if a.width < minTerminalWidth || a.height == 0 {
		return
	}
	h := a.height - headerHeight - statusHeight
	if h < minContentHeight {
		h = minContentHeight
	}
	w := a.bodyWidth()

	if !a.ready {
		a.body = viewport.New(w, h)
		a.ready = true
	} else {
		a.body.Width = w
		a.body.Height = h
	}
	a.body.SetContent(a.renderBody(w))
}

// renderBody mounts the scrolling part of the page. In the compact layout the
// sidebar is stacked above the body.
func (a App) renderBody(w int) string {
	t := theme.Active
	var nodes []view.Node
	if a.isCompactLayout() {
		nodes = append(nodes, a.page.Sidebar...)
	}
	nodes = append(nodes, a.page.Body...)
	nodes = append(nodes, a.page.Footer...)

	// One column of margin on the right keeps cards off the sidebar edge.
	content := mountNodes(nodes, w-1)
	return fillLinesWithBackground(content, w, t.Background)
}

func (a App) renderSidebar(h int) string {
	t := theme.Active
	w := sidebarWidth - 1

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true).
		Width(w)

	content := titleStyle.Render(" ◈ "+view.SidebarTitle) + "\n" + mountNodes(a.page.Sidebar, w)
	content = padHeight(truncateHeight(content, h), h)
	content = fillLinesWithBackground(content, w, t.Surface)

	edge := lipgloss.NewStyle().Foreground(t.Border).Background(t.Background)
	rule := strings.TrimSuffix(strings.Repeat(edge.Render("│")+"\n", h), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, content, rule)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  stoki needs at least %d columns.\n  Current width: %d\n",
		a.width,
		minTerminalWidth,
		a.width,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Analysis Focus"))
	b.WriteString("\n")
	focusBindings := make([]struct{ key, desc string }, 0, len(components.Tabs)+1)
	for i, tab := range components.Tabs {
		focusBindings = append(focusBindings, struct{ key, desc string }{
			fmt.Sprintf("%c  %d", tab.Key, i+1),
			view.Focus(i).String(),
		})
	}
	focusBindings = append(focusBindings, struct{ key, desc string }{"← →", "Previous / Next focus"})
	for _, bind := range focusBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Scrolling"))
	b.WriteString("\n")
	scrollBindings := []struct{ key, desc string }{
		{"j k", "Line down / up"},
		{"^d ^u", "Half-page scroll"},
		{"Home G", "Top / Bottom"},
		{"Wheel", "Scroll"},
	}
	for _, bind := range scrollBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"t", "Cycle theme"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + page title row
	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	titleRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	titleStr := titleStyle.Render(" "+a.page.Title) + subtitleStyle.Render(" · "+a.page.Subtitle)
	header := components.RenderTabBar(int(a.focus), w) + "\n" +
		titleRowStyle.Render(truncateWidth(titleStr, w))

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.focus.String(), a.body.ScrollPercent())

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Body viewport, with the sidebar column in the wide layout
	content := a.body.View()
	if !a.isCompactLayout() {
		content = lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(contentH), content)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Ensure entire terminal is filled with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateWidth(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(s)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == int(a.focus))

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

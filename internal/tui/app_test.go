package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/stoki/internal/dataset"
	"github.com/theirongolddev/stoki/internal/tui/theme"
	"github.com/theirongolddev/stoki/internal/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func sized(t *testing.T, a App, w, h int) App {
	t.Helper()
	m, _ := a.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m.(App)
}

func press(t *testing.T, a App, key string) App {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+d":
		msg = tea.KeyMsg{Type: tea.KeyCtrlD}
	case "home":
		msg = tea.KeyMsg{Type: tea.KeyHome}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ := a.Update(msg)
	return m.(App)
}

func TestFocusKeys(t *testing.T) {
	theme.SetActive("flexoki-dark")
	a := sized(t, NewApp(dataset.Generate(), view.MarketOverview, nil), 100, 40)

	tests := []struct {
		key  string
		want view.Focus
	}{
		{"c", view.CompetitiveLandscape},
		{"s", view.TargetSegmentation},
		{"p", view.PositioningStrategy},
		{"e", view.PerformanceTracker},
		{"g", view.GoToMarketPlan},
		{"m", view.MarketOverview},
		{"6", view.GoToMarketPlan},
		{"1", view.MarketOverview},
		{"left", view.GoToMarketPlan},
		{"right", view.MarketOverview},
		{"z", view.MarketOverview},
	}
	for _, tt := range tests {
		a = press(t, a, tt.key)
		if a.Focus() != tt.want {
			t.Fatalf("after %q focus = %v, want %v", tt.key, a.Focus(), tt.want)
		}
	}
}

func TestReselectingFocusIsByteIdentical(t *testing.T) {
	theme.SetActive("flexoki-dark")
	tables := dataset.Generate()

	for _, w := range []int{100, 160} {
		a := sized(t, NewApp(tables, view.PerformanceTracker, nil), w, 50)
		first := a.View()

		a = press(t, a, "c")
		if a.View() == first {
			t.Fatalf("width %d: switching focus did not change output", w)
		}
		a = press(t, a, "e")
		if got := a.View(); got != first {
			t.Fatalf("width %d: re-selecting focus changed output", w)
		}
	}
}

func TestViewFillsTerminal(t *testing.T) {
	theme.SetActive("flexoki-dark")
	for _, f := range view.All() {
		for _, w := range []int{80, 120, 200} {
			a := sized(t, NewApp(dataset.Generate(), f, nil), w, 30)
			out := a.View()
			if h := lipgloss.Height(out); h != 30 {
				t.Errorf("%v at %d cols: height %d, want 30", f, w, h)
			}
			if !strings.Contains(out, view.Title) {
				t.Errorf("%v at %d cols: title missing", f, w)
			}
		}
	}
}

func TestSidebarPlacement(t *testing.T) {
	theme.SetActive("flexoki-dark")
	tables := dataset.Generate()

	wide := sized(t, NewApp(tables, view.MarketOverview, nil), 160, 40)
	if wide.isCompactLayout() {
		t.Fatal("160 cols should use the wide layout")
	}
	if !strings.Contains(wide.View(), view.SidebarTitle) {
		t.Error("wide layout should show the sidebar column")
	}
	if strings.Contains(wide.renderBody(wide.bodyWidth()), "Quick Stats") {
		t.Error("wide layout body should not repeat the sidebar")
	}

	compact := sized(t, NewApp(tables, view.MarketOverview, nil), 100, 40)
	if !compact.isCompactLayout() {
		t.Fatal("100 cols should use the compact layout")
	}
	if !strings.Contains(compact.renderBody(compact.bodyWidth()), "Quick Stats") {
		t.Error("compact layout should stack the sidebar into the body")
	}
}

func TestScrollKeys(t *testing.T) {
	theme.SetActive("flexoki-dark")
	a := sized(t, NewApp(dataset.Generate(), view.CompetitiveLandscape, nil), 100, 20)

	a = press(t, a, "j")
	if a.body.YOffset != 1 {
		t.Fatalf("j: offset %d, want 1", a.body.YOffset)
	}
	a = press(t, a, "k")
	a = press(t, a, "k")
	if a.body.YOffset != 0 {
		t.Fatalf("k past top: offset %d, want 0", a.body.YOffset)
	}
	a = press(t, a, "ctrl+d")
	if a.body.YOffset != a.body.Height/2 {
		t.Fatalf("ctrl+d: offset %d, want %d", a.body.YOffset, a.body.Height/2)
	}
	a = press(t, a, "G")
	if !a.body.AtBottom() {
		t.Fatal("G should reach the bottom")
	}
	a = press(t, a, "home")
	if a.body.YOffset != 0 {
		t.Fatalf("home: offset %d, want 0", a.body.YOffset)
	}

	a = press(t, a, "j")
	a = press(t, a, "c") // same focus keeps position
	if a.body.YOffset != 1 {
		t.Fatalf("re-pressing the active focus moved the body to %d", a.body.YOffset)
	}
	a = press(t, a, "m")
	if a.body.YOffset != 0 {
		t.Fatalf("focus change should reset scroll, offset %d", a.body.YOffset)
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	theme.SetActive("flexoki-dark")
	a := sized(t, NewApp(dataset.Generate(), view.MarketOverview, nil), 100, 30)

	x := tabWidthForTest(0) + 1 + tabWidthForTest(1)/2
	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	a = m.(App)
	if a.Focus() != view.CompetitiveLandscape {
		t.Fatalf("click on second tab: focus %v", a.Focus())
	}

	m, _ = a.Update(tea.MouseMsg{X: 2, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	a = m.(App)
	if a.Focus() != view.CompetitiveLandscape {
		t.Fatal("click below the tab bar should not change focus")
	}

	m, _ = a.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	a = m.(App)
	if a.body.YOffset != wheelStep {
		t.Fatalf("wheel: offset %d, want %d", a.body.YOffset, wheelStep)
	}
}

func TestHelpToggleAndDismiss(t *testing.T) {
	theme.SetActive("flexoki-dark")
	a := sized(t, NewApp(dataset.Generate(), view.MarketOverview, nil), 100, 40)

	a = press(t, a, "?")
	if !a.showHelp || !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Fatal("? should open help")
	}
	a = press(t, a, "c")
	if a.showHelp {
		t.Fatal("any key should close help")
	}
	if a.Focus() != view.MarketOverview {
		t.Fatal("key that closes help should not act")
	}
}

func TestThemeCycle(t *testing.T) {
	theme.SetActive("flexoki-dark")
	t.Cleanup(func() { theme.SetActive("flexoki-dark") })

	a := sized(t, NewApp(dataset.Generate(), view.MarketOverview, nil), 100, 30)
	a = press(t, a, "t")
	if theme.Active.Name != theme.Next("flexoki-dark") {
		t.Fatalf("theme = %q", theme.Active.Name)
	}
	if !strings.Contains(a.View(), theme.Active.Name) {
		t.Error("status bar should name the new theme")
	}
}

func TestTooNarrow(t *testing.T) {
	a := sized(t, NewApp(dataset.Generate(), view.MarketOverview, nil), 60, 20)
	out := a.View()
	if !strings.Contains(out, "Terminal too narrow") {
		t.Fatalf("expected narrow notice, got %q", out)
	}
	if a.ready {
		t.Error("body should not be laid out below the minimum width")
	}
}

func TestQuit(t *testing.T) {
	a := sized(t, NewApp(dataset.Generate(), view.MarketOverview, nil), 100, 30)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestSetupValues(t *testing.T) {
	cfg := loadConfigOrDefault()
	cfg.Appearance.Theme = "not-a-theme"
	cfg.General.DefaultFocus = "Performance Tracker"

	vals := SetupValuesFrom(cfg)
	if vals.Theme != "flexoki-dark" {
		t.Errorf("unknown theme should seed the default, got %q", vals.Theme)
	}
	if vals.Focus != "performance-tracker" {
		t.Errorf("focus = %q", vals.Focus)
	}

	vals.Theme = "tokyo-night"
	vals.Apply(&cfg)
	if cfg.Appearance.Theme != "tokyo-night" || cfg.General.DefaultFocus != "performance-tracker" {
		t.Errorf("Apply: %+v", cfg)
	}
}

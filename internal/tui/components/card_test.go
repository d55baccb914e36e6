package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func sum(ws []int) int {
	n := 0
	for _, w := range ws {
		n += w
	}
	return n
}

func TestLayoutWeighted(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		weights []int
		want    []int
	}{
		{"two to one", 90, []int{2, 1}, []int{60, 30}},
		{"remainder goes last", 100, []int{1, 1, 1}, []int{33, 33, 34}},
		{"zero weights split evenly", 10, []int{0, 0}, []int{5, 5}},
		{"negative weight counts as zero", 40, []int{-3, 1}, []int{0, 40}},
		{"empty", 80, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutWeighted(tt.total, tt.weights)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
			if len(got) > 0 && sum(got) != tt.total {
				t.Errorf("widths %v sum to %d, want %d", got, sum(got), tt.total)
			}
		})
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 6} {
		for _, total := range []int{60, 77, 144} {
			ws := LayoutRow(total, n)
			if len(ws) != n || sum(ws) != total {
				t.Errorf("LayoutRow(%d, %d) = %v", total, n, ws)
			}
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")
	cards := []struct{ Label, Value, Delta string }{
		{"Target SOM", "40,000", "SMMEs"},
		{"Projected ARPU", "R350", "/month"},
		{"Target CAC", "R550", "-15%"},
		{"Q1 Signups", "217", "+17"},
	}
	out := MetricCardRow(cards, 100)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5 (border, label, value, delta, border)", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 100 {
			t.Errorf("line %d width %d, want 100", i, w)
		}
	}
}

func TestToneColors(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active
	tests := []struct {
		tone string
		want lipgloss.Color
	}{
		{"success", th.Green},
		{"warning", th.Orange},
		{"info", th.Blue},
		{"", th.Blue},
	}
	for _, tt := range tests {
		if got := toneColor(tt.tone); got != tt.want {
			t.Errorf("toneColor(%q) = %v, want %v", tt.tone, got, tt.want)
		}
	}
}

func TestCallout(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := Callout("success", "Market Gap", "Only 15% of SMMEs use accounting software", 50)
	if !strings.Contains(out, "Market Gap:") {
		t.Errorf("title missing:\n%s", out)
	}
	for i, l := range strings.Split(out, "\n") {
		if w := lipgloss.Width(l); w != 50 {
			t.Errorf("line %d width %d, want 50", i, w)
		}
	}
	if Callout("success", "x", "y", 40) == Callout("warning", "x", "y", 40) {
		t.Error("tones should render in different colors")
	}
}

func TestBadge(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := Badge("warning", "In Progress")
	if !strings.Contains(out, "In Progress") {
		t.Errorf("badge text missing: %q", out)
	}
	if w := lipgloss.Width(out); w != len("In Progress")+2 {
		t.Errorf("badge width %d, want text plus padding", w)
	}
}

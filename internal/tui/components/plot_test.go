package components

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func sampleBars() []Bar {
	return []Bar{
		{Label: "TAM", Value: 2_500_000, Color: "#4385BE"},
		{Label: "SAM", Value: 750_000, Color: "#879A39"},
		{Label: "SOM", Value: 40_000, Color: "#DA702C"},
		{Label: "Current", Value: 217, Color: "#D14D41"},
	}
}

func TestHBarChartFillsWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")
	for _, width := range []int{40, 72, 120} {
		lines := strings.Split(HBarChart(sampleBars(), 0, width), "\n")
		if len(lines) != 4 {
			t.Fatalf("width %d: %d lines, want 4", width, len(lines))
		}
		for i, l := range lines {
			if got := lipgloss.Width(l); got != width {
				t.Errorf("width %d line %d: %d columns", width, i, got)
			}
		}
	}
}

func TestHBarChartSmallValueStillVisible(t *testing.T) {
	theme.SetActive("flexoki-dark")
	lines := strings.Split(HBarChart(sampleBars(), 0, 60), "\n")
	if strings.Count(lines[3], "█") != 1 {
		t.Errorf("217 of 2.5M should draw one cell: %q", lines[3])
	}
}

func TestFunnelNarrows(t *testing.T) {
	theme.SetActive("flexoki-dark")
	lines := strings.Split(Funnel(sampleBars(), 80), "\n")
	prev := -1
	for i, l := range lines {
		n := strings.Count(l, "█")
		if n < 1 {
			t.Errorf("stage %d has no bar", i)
		}
		if prev >= 0 && n > prev {
			t.Errorf("stage %d wider than stage %d", i, i-1)
		}
		prev = n
	}
}

func TestShareBarSpansWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := ShareBar([]Bar{
		{Label: "Micro", Value: 65, Color: "#4385BE"},
		{Label: "Small", Value: 28, Color: "#879A39"},
		{Label: "Medium", Value: 7, Color: "#DA702C"},
	}, 50)
	lines := strings.Split(out, "\n")
	if got := strings.Count(lines[0], "█"); got != 50 {
		t.Errorf("stacked bar has %d cells, want 50", got)
	}
	if !strings.Contains(out, "65.0%") {
		t.Error("legend missing share")
	}
}

func TestHeatmapMarksCells(t *testing.T) {
	theme.SetActive("flexoki-dark")
	cells := [][]int{{1, 0, 1}, {0, 0, 1}}
	out := Heatmap([]string{"Invoicing", "VAT"}, []string{"A", "B", "Stoki"}, cells, "Stoki", 60)
	if got := strings.Count(out, "✓"); got != 3 {
		t.Errorf("ticks = %d, want 3", got)
	}
	if got := strings.Count(out, "✗"); got != 3 {
		t.Errorf("crosses = %d, want 3", got)
	}
}

func TestColumnChart(t *testing.T) {
	theme.SetActive("flexoki-dark")
	cols := []Column{
		{Label: "Micro", Value: 10, Color: "#4385BE"},
		{Label: "Small", Value: 20, Color: "#879A39"},
		{Label: "Medium", Value: 30, Color: "#DA702C"},
	}

	out := ColumnChart(cols, 60, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), out)
	}
	if got := strings.Count(lines[0], "█"); got != maxColumnW {
		t.Errorf("top row: %d cells, want only the tallest column (%d)", got, maxColumnW)
	}
	if !strings.Contains(lines[6], "└") {
		t.Errorf("axis line missing: %q", lines[6])
	}
	for _, want := range []string{"Micro", "Small", "Medium"} {
		if !strings.Contains(lines[7], want) {
			t.Errorf("label row missing %q", want)
		}
	}

	narrow := ColumnChart(cols, 10, 8)
	if strings.Contains(narrow, "└") {
		t.Error("narrow width should fall back to horizontal bars")
	}
}

func TestGanttRows(t *testing.T) {
	theme.SetActive("flexoki-dark")
	day := func(s string) time.Time {
		d, _ := time.Parse(time.DateOnly, s)
		return d
	}
	out := Gantt([]GanttTask{
		{Label: "MVP", Start: day("2024-01-01"), End: day("2024-03-31"), Color: "#879A39"},
		{Label: "Launch", Start: day("2024-04-01"), End: day("2024-06-30"), Color: "#DA702C"},
	}, 60)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[3], "Jan 2024") || !strings.Contains(lines[3], "Jun 2024") {
		t.Errorf("date axis = %q", lines[3])
	}
}

func TestChartLabels(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{0.25, "0.25"},
		{40, "40"},
		{1500, "1.5k"},
		{2_000_000, "2M"},
		{2_500_000, "2.5M"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.v); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
	for peak, want := range map[float64]float64{7: 1, 30: 5, 100: 20} {
		if got := chartTickStep(peak); got != want {
			t.Errorf("chartTickStep(%v) = %v, want %v", peak, got, want)
		}
	}
}

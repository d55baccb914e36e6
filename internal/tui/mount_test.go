package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/stoki/internal/tui/theme"
	"github.com/theirongolddev/stoki/internal/view"

	"github.com/charmbracelet/lipgloss"
)

func quickStats() view.Node {
	return view.Node{Kind: view.KindMetrics, Metrics: []view.Metric{
		{Label: "Target SOM", Value: "40,000", Delta: "SMMEs"},
		{Label: "Projected ARPU", Value: "R350", Delta: "/month"},
		{Label: "Target CAC", Value: "R550", Delta: "-15%"},
		{Label: "Q1 Signups", Value: "217", Delta: "+17"},
	}}
}

func TestMetricTilesStackWhenNarrow(t *testing.T) {
	theme.SetActive("flexoki-dark")
	tests := []struct {
		name      string
		width     int
		wantLines int
	}{
		{"side by side", 4 * minTileWidth, 5},
		{"stacked", 4*minTileWidth - 1, 4 * 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mountNode(quickStats(), tt.width)
			lines := strings.Split(out, "\n")
			if len(lines) != tt.wantLines {
				t.Fatalf("width %d: %d lines, want %d", tt.width, len(lines), tt.wantLines)
			}
			for i, l := range lines {
				if w := lipgloss.Width(l); w != tt.width {
					t.Errorf("line %d width %d, want %d", i, w, tt.width)
				}
			}
		})
	}
}

func TestSingleMetricNeverStacks(t *testing.T) {
	theme.SetActive("flexoki-dark")
	n := view.Node{Kind: view.KindMetrics, Metrics: []view.Metric{{Label: "Feature Coverage", Value: "100%", Delta: "7/7 features"}}}
	if got := len(strings.Split(mountNode(n, 30), "\n")); got != 5 {
		t.Errorf("single tile: %d lines, want 5", got)
	}
}

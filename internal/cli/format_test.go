package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{750000, "750,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatRand(75000); got != "R75,000" {
		t.Errorf("FormatRand = %q", got)
	}
	if got := FormatRandDecimal(decimal.RequireFromString("349.6")); got != "R350" {
		t.Errorf("FormatRandDecimal = %q", got)
	}
	if got := FormatRandMillions(decimal.RequireFromString("2.5")); got != "R2.5M" {
		t.Errorf("FormatRandMillions = %q", got)
	}
	if got := FormatRandMillions(decimal.Zero); got != "R0M" {
		t.Errorf("FormatRandMillions(0) = %q", got)
	}
	payback := decimal.NewFromInt(800).Div(decimal.NewFromInt(305))
	if got := FormatMonths(payback); got != "2.62" {
		t.Errorf("FormatMonths = %q", got)
	}
}

func TestFormatValueAndPercent(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{FormatValue(217), "217"},
		{FormatValue(100000), "100,000"},
		{FormatValue(4.2), "4.2"},
		{FormatPercent(25.8), "25.8%"},
		{FormatWholePercent(74.5), "75%"},
		{FormatWholePercent(54.29), "54%"},
		{FormatDelta(217, 200), "+17"},
		{FormatDelta(3, 5), "-2"},
		{FormatCompact(8200), "8.2K"},
		{FormatCompact(750000), "750.0K"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Target SOM", "40,000 SMMEs"},
			{"---"},
			{"Target CAC", "R550"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	w := lipgloss.Width(lines[0])
	for i, l := range lines {
		if lipgloss.Width(l) != w {
			t.Errorf("line %d width %d, want %d", i, lipgloss.Width(l), w)
		}
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	for _, ratio := range []float64{-1, 0, 0.75, 1, 3} {
		out := RenderProgressBar(ratio, 20, "caption")
		if got := strings.Count(out, "█") + strings.Count(out, "░"); got != 20 {
			t.Errorf("ratio %v: %d cells, want 20", ratio, got)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 50, 100}); got != "▁▄█" {
		t.Errorf("got %q", got)
	}
	if RenderSparkline(nil) != "" {
		t.Error("empty input should render nothing")
	}
}

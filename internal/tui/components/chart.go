package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Column is one vertical bar of a ColumnChart.
type Column struct {
	Label string
	Value float64
	Color lipgloss.Color
}

const (
	minColumnW = 3
	maxColumnW = 12
	columnGap  = 2
)

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// ColumnChart draws one vertical bar per column over a ticked y axis, with
// the category and value centered under each bar. Too narrow a width falls
// back to horizontal bars.
func ColumnChart(cols []Column, width, height int) string {
	if len(cols) == 0 {
		return ""
	}
	n := len(cols)

	peak := 0.0
	for _, c := range cols {
		peak = math.Max(peak, c.Value)
	}
	if peak == 0 {
		peak = 1
	}

	step := chartTickStep(peak)
	for int(math.Ceil(peak/step)) > max(2, height/2) {
		step *= 2
	}
	ticks := max(1, int(math.Ceil(peak/step)))
	ceiling := step * float64(ticks)
	rowsPerTick := max(2, height/ticks)
	chartH := rowsPerTick * ticks

	axisW := max(4, len(formatChartLabel(ceiling))+1)
	colW := min(maxColumnW, (width-axisW-1-(n-1)*columnGap)/n)
	if colW < minColumnW || height < 3 {
		bars := make([]Bar, n)
		for i, c := range cols {
			bars[i] = Bar{Label: c.Label, Value: c.Value, Color: c.Color}
		}
		return HBarChart(bars, 0, width)
	}

	t := theme.Active
	axis := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)
	gap := space.Render(strings.Repeat(" ", columnGap))

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		top := ceiling * float64(row) / float64(chartH)
		bottom := ceiling * float64(row-1) / float64(chartH)

		label := ""
		if row%rowsPerTick == 0 {
			label = formatChartLabel(step * float64(row/rowsPerTick))
		}
		b.WriteString(axis.Render(fmt.Sprintf("%*s│", axisW, label)))

		for i, c := range cols {
			if i > 0 {
				b.WriteString(gap)
			}
			cell := " "
			switch {
			case c.Value >= top:
				cell = "█"
			case c.Value > bottom:
				idx := int((c.Value - bottom) / (top - bottom) * 8)
				cell = string(eighths[max(1, min(idx, 8))])
			}
			style := lipgloss.NewStyle().Foreground(c.Color).Background(t.Surface)
			b.WriteString(style.Render(strings.Repeat(cell, colW)))
		}
		b.WriteString("\n")
	}

	axisLen := n*colW + (n-1)*columnGap
	b.WriteString(axis.Render(fmt.Sprintf("%*s└", axisW, "0") + strings.Repeat("─", axisLen)))

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	indent := space.Render(strings.Repeat(" ", axisW+1))
	for _, line := range []struct {
		style lipgloss.Style
		text  func(Column) string
	}{
		{labelStyle, func(c Column) string { return c.Label }},
		{valueStyle, func(c Column) string { return formatChartLabel(c.Value) }},
	} {
		b.WriteString("\n" + indent)
		for i, c := range cols {
			if i > 0 {
				b.WriteString(gap)
			}
			b.WriteString(line.style.Render(center(line.text(c), colW)))
		}
	}
	return b.String()
}

// center truncates s to w columns and pads it evenly on both sides.
func center(s string, w int) string {
	s = truncate(s, w)
	pad := w - lipgloss.Width(s)
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}

// chartTickStep picks a 1, 2 or 5 times power-of-ten interval giving about
// five ticks up to maxVal.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel abbreviates axis values: 1.5k, 2M, 0.25.
func formatChartLabel(v float64) string {
	for _, u := range []struct {
		div    float64
		suffix string
	}{{1e9, "B"}, {1e6, "M"}, {1e3, "k"}} {
		if v < u.div {
			continue
		}
		if v == math.Trunc(v/u.div)*u.div {
			return fmt.Sprintf("%.0f%s", v/u.div, u.suffix)
		}
		return fmt.Sprintf("%.1f%s", v/u.div, u.suffix)
	}
	if v >= 1 || v == 0 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

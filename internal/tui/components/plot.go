package components

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color
	Text  string // printed after the bar; defaults to the value
	Note  string // printed after Text in green
}

func (b Bar) text() string {
	if b.Text != "" {
		return b.Text
	}
	return formatChartLabel(b.Value)
}

// truncate cuts s to at most w columns, marking the cut with an ellipsis.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// padRight pads s with spaces to exactly w columns.
func padRight(s string, w int) string {
	s = truncate(s, w)
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

type barLayout struct {
	labelW, barW, textW int
	peak                float64
}

func layoutBars(bars []Bar, width int) barLayout {
	var l barLayout
	noteW := 0
	for _, b := range bars {
		l.labelW = max(l.labelW, lipgloss.Width(b.Label))
		l.textW = max(l.textW, lipgloss.Width(b.text()))
		if b.Note != "" {
			noteW = max(noteW, lipgloss.Width(b.Note)+1)
		}
		l.peak = math.Max(l.peak, b.Value)
	}
	if l.peak <= 0 {
		l.peak = 1
	}
	l.labelW = min(l.labelW, width/3)
	l.barW = width - l.labelW - l.textW - noteW - 2
	if l.barW < 4 {
		l.barW = 4
	}
	return l
}

// HBarChart renders one labeled horizontal bar per entry, scaled to the
// largest value. peak overrides the scale when it is larger than every value.
func HBarChart(bars []Bar, peak float64, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active
	l := layoutBars(bars, width)
	if peak > l.peak {
		l.peak = peak
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	rows := make([]string, len(bars))
	for i, b := range bars {
		n := int(math.Round(b.Value / l.peak * float64(l.barW)))
		n = max(0, min(n, l.barW))
		if n == 0 && b.Value > 0 {
			n = 1
		}
		barStyle := lipgloss.NewStyle().Foreground(b.Color).Background(t.Surface)

		row := labelStyle.Render(padRight(b.Label, l.labelW)) +
			space.Render(" ") +
			barStyle.Render(strings.Repeat("█", n)) +
			space.Render(strings.Repeat(" ", l.barW-n+1)) +
			textStyle.Render(padRight(b.text(), l.textW))
		if b.Note != "" {
			row += space.Render(" ") + noteStyle.Render(b.Note)
		}
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// Funnel renders bars centered on a common axis, widest first.
func Funnel(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active
	l := layoutBars(bars, width)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	rows := make([]string, len(bars))
	for i, b := range bars {
		n := int(math.Round(b.Value / l.peak * float64(l.barW)))
		n = max(1, min(n, l.barW))
		left := (l.barW - n) / 2
		barStyle := lipgloss.NewStyle().Foreground(b.Color).Background(t.Surface)

		rows[i] = labelStyle.Render(padRight(b.Label, l.labelW)) +
			space.Render(strings.Repeat(" ", left+1)) +
			barStyle.Render(strings.Repeat("█", n)) +
			space.Render(strings.Repeat(" ", l.barW-n-left+1)) +
			textStyle.Render(b.text())
	}
	return strings.Join(rows, "\n")
}

// ShareBar renders slices as one stacked bar with a legend of shares.
func ShareBar(slices []Bar, width int) string {
	if len(slices) == 0 {
		return ""
	}
	t := theme.Active

	total := 0.0
	for _, s := range slices {
		total += math.Max(s.Value, 0)
	}
	if total == 0 {
		total = 1
	}

	var bar strings.Builder
	used := 0
	for i, s := range slices {
		n := int(math.Round(math.Max(s.Value, 0) / total * float64(width)))
		if i == len(slices)-1 {
			n = width - used
		}
		n = max(0, min(n, width-used))
		used += n
		bar.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render(strings.Repeat("█", n)))
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface)

	lines := []string{bar.String(), ""}
	for _, s := range slices {
		marker := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("■")
		lines = append(lines, marker+space.Render(" ")+
			labelStyle.Render(padRight(s.Label, width-9))+
			pctStyle.Render(fmt.Sprintf("%6.1f%%", s.Value/total*100)))
	}
	return strings.Join(lines, "\n")
}

// ScatterPoint is one marker on a scatter plot.
type ScatterPoint struct {
	Label string
	X, Y  float64
	Size  float64
	Color lipgloss.Color
	Note  string
}

// RefLine is a straight line across a plot.
type RefLine struct {
	Value float64
	Label string
	Color lipgloss.Color
}

// PlotLabel is free text anchored at a data coordinate.
type PlotLabel struct {
	X, Y  float64
	Text  string
	Color lipgloss.Color
}

// Box outlines a region in data coordinates.
type Box struct {
	X0, Y0, X1, Y1 float64
	Color          lipgloss.Color
}

// Tick replaces a numeric axis label.
type Tick struct {
	Value float64
	Label string
}

// ScatterOptions carries the decorations drawn under the points.
type ScatterOptions struct {
	XTitle string
	YTitle string
	HLines []RefLine
	VLines []RefLine
	Labels []PlotLabel
	Boxes  []Box
	YTicks []Tick
}

type cell struct {
	r     rune
	color lipgloss.Color
}

type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for i := range c.cells {
		c.cells[i] = make([]cell, w)
		for j := range c.cells[i] {
			c.cells[i][j] = cell{r: ' '}
		}
	}
	return c
}

func (c *canvas) set(row, col int, r rune, color lipgloss.Color) {
	if row < 0 || row >= c.h || col < 0 || col >= c.w {
		return
	}
	c.cells[row][col] = cell{r: r, color: color}
}

func (c *canvas) text(row, col int, s string, color lipgloss.Color) {
	for i, r := range []rune(s) {
		c.set(row, col+i, r, color)
	}
}

func (c *canvas) renderRow(row int, fallback lipgloss.Color) string {
	t := theme.Active
	var b strings.Builder
	var run strings.Builder
	runColor := lipgloss.Color("")
	flush := func() {
		if run.Len() == 0 {
			return
		}
		fg := runColor
		if fg == "" {
			fg = fallback
		}
		b.WriteString(lipgloss.NewStyle().Foreground(fg).Background(t.Surface).Render(run.String()))
		run.Reset()
	}
	for _, cl := range c.cells[row] {
		if cl.color != runColor {
			flush()
			runColor = cl.color
		}
		run.WriteRune(cl.r)
	}
	flush()
	return b.String()
}

type axisRange struct{ lo, hi float64 }

func (r *axisRange) include(v float64) {
	r.lo = math.Min(r.lo, v)
	r.hi = math.Max(r.hi, v)
}

func (r axisRange) padded() axisRange {
	span := r.hi - r.lo
	if span == 0 {
		span = math.Max(math.Abs(r.hi), 1)
	}
	return axisRange{lo: r.lo - span*0.1, hi: r.hi + span*0.1}
}

func (r axisRange) scale(v float64, cells int) int {
	if cells <= 1 || r.hi == r.lo {
		return 0
	}
	return int(math.Round((v - r.lo) / (r.hi - r.lo) * float64(cells-1)))
}

// sizeMarker picks a marker glyph by size relative to the largest point.
func sizeMarker(size, peak float64) rune {
	if peak <= 0 || size <= 0 {
		return '○'
	}
	switch ratio := size / peak; {
	case ratio < 0.34:
		return '•'
	case ratio < 0.67:
		return '●'
	default:
		return '◉'
	}
}

// ScatterPlot renders points on a character grid with reference lines,
// text labels and outlined boxes, followed by a legend.
func ScatterPlot(points []ScatterPoint, opts ScatterOptions, width, height int) string {
	if len(points) == 0 {
		return ""
	}
	t := theme.Active
	if height < 5 {
		height = 5
	}

	xr := axisRange{lo: math.Inf(1), hi: math.Inf(-1)}
	yr := xr
	peak := 0.0
	for _, p := range points {
		xr.include(p.X)
		yr.include(p.Y)
		peak = math.Max(peak, p.Size)
	}
	for _, l := range opts.VLines {
		xr.include(l.Value)
	}
	for _, l := range opts.HLines {
		yr.include(l.Value)
	}
	for _, l := range opts.Labels {
		xr.include(l.X)
		yr.include(l.Y)
	}
	for _, b := range opts.Boxes {
		xr.include(b.X0)
		xr.include(b.X1)
		yr.include(b.Y0)
		yr.include(b.Y1)
	}
	for _, tk := range opts.YTicks {
		yr.include(tk.Value)
	}
	xr, yr = xr.padded(), yr.padded()

	yLabels := make(map[int]string)
	if len(opts.YTicks) > 0 {
		for _, tk := range opts.YTicks {
			yLabels[height-1-yr.scale(tk.Value, height)] = tk.Label
		}
	} else {
		yLabels[0] = formatChartLabel(yr.hi)
		yLabels[height/2] = formatChartLabel((yr.hi + yr.lo) / 2)
		yLabels[height-1] = formatChartLabel(yr.lo)
	}
	yLabelW := 4
	for _, l := range yLabels {
		yLabelW = max(yLabelW, lipgloss.Width(l)+1)
	}

	plotW := width - yLabelW - 1
	if plotW < 10 {
		plotW = 10
	}
	cv := newCanvas(plotW, height)
	col := func(x float64) int { return xr.scale(x, plotW) }
	row := func(y float64) int { return height - 1 - yr.scale(y, height) }

	for _, l := range opts.HLines {
		r := row(l.Value)
		for c := 0; c < plotW; c++ {
			cv.set(r, c, '┄', l.Color)
		}
		if l.Label != "" {
			cv.text(r, max(0, plotW-len([]rune(l.Label))), l.Label, l.Color)
		}
	}
	for _, l := range opts.VLines {
		c := col(l.Value)
		for r := 0; r < height; r++ {
			cv.set(r, c, '┆', l.Color)
		}
		if l.Label != "" {
			cv.text(0, c+1, l.Label, l.Color)
		}
	}
	for _, b := range opts.Boxes {
		c0, c1 := col(b.X0), col(b.X1)
		r0, r1 := row(b.Y1), row(b.Y0)
		if c1-c0 < 2 || r1-r0 < 1 {
			cv.set((r0+r1)/2, (c0+c1)/2, '◌', b.Color)
			continue
		}
		for c := c0 + 1; c < c1; c++ {
			cv.set(r0, c, '┈', b.Color)
			cv.set(r1, c, '┈', b.Color)
		}
		for r := r0 + 1; r < r1; r++ {
			cv.set(r, c0, '┊', b.Color)
			cv.set(r, c1, '┊', b.Color)
		}
		cv.set(r0, c0, '╭', b.Color)
		cv.set(r0, c1, '╮', b.Color)
		cv.set(r1, c0, '╰', b.Color)
		cv.set(r1, c1, '╯', b.Color)
	}
	for _, l := range opts.Labels {
		n := len([]rune(l.Text))
		cv.text(row(l.Y), max(0, col(l.X)-n/2), l.Text, l.Color)
	}
	for _, p := range points {
		cv.set(row(p.Y), col(p.X), sizeMarker(p.Size, peak), p.Color)
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	if opts.YTitle != "" {
		b.WriteString(titleStyle.Render(opts.YTitle))
		b.WriteString("\n")
	}
	for r := 0; r < height; r++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, yLabels[r])))
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(cv.renderRow(r, t.TextMuted))
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW) + "└" + strings.Repeat("─", plotW)))
	b.WriteString("\n")

	lo, hi := formatChartLabel(xr.lo), formatChartLabel(xr.hi)
	gap := plotW - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW+1) + lo + strings.Repeat(" ", gap) + hi))
	if opts.XTitle != "" {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(strings.Repeat(" ", yLabelW+1) + opts.XTitle))
	}

	b.WriteString("\n\n")
	b.WriteString(scatterLegend(points, peak, width))
	return b.String()
}

func scatterLegend(points []ScatterPoint, peak float64, width int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	labelW := 0
	for _, p := range points {
		labelW = max(labelW, lipgloss.Width(p.Label))
	}

	lines := make([]string, len(points))
	for i, p := range points {
		marker := lipgloss.NewStyle().Foreground(p.Color).Background(t.Surface).Render(string(sizeMarker(p.Size, peak)))
		line := marker + space.Render(" ") + labelStyle.Render(padRight(p.Label, labelW))
		if p.Note != "" {
			line += space.Render("  ") + noteStyle.Render(truncate(p.Note, width-labelW-4))
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// ComboChart draws bars on the left axis and a marked line on the right
// axis over shared category labels.
func ComboChart(labels []string, bars, line []float64, barColor, lineColor lipgloss.Color, width, height int) string {
	n := len(labels)
	if n == 0 || len(bars) != n || len(line) != n {
		return ""
	}
	t := theme.Active
	if height < 4 {
		height = 4
	}

	barPeak, linePeak := 0.0, 0.0
	for i := range labels {
		barPeak = math.Max(barPeak, bars[i])
		linePeak = math.Max(linePeak, line[i])
	}
	barTop := math.Ceil(barPeak/chartTickStep(barPeak)) * chartTickStep(barPeak)
	lineTop := math.Ceil(linePeak/chartTickStep(linePeak)) * chartTickStep(linePeak)
	if barTop == 0 {
		barTop = 1
	}
	if lineTop == 0 {
		lineTop = 1
	}

	leftW := len(formatChartLabel(barTop)) + 1
	rightW := len(formatChartLabel(lineTop)) + 1
	plotW := width - leftW - rightW - 2
	groupW := plotW / n
	if groupW < 3 {
		groupW = 3
	}
	plotW = groupW * n
	barW := min(max(groupW-2, 1), 8)

	cv := newCanvas(plotW, height)
	for i := range labels {
		start := i*groupW + (groupW-barW)/2
		filled := int(math.Round(bars[i] / barTop * float64(height)))
		for r := 0; r < filled && r < height; r++ {
			for c := 0; c < barW; c++ {
				cv.set(height-1-r, start+c, '█', barColor)
			}
		}
	}
	prevRow, prevCol := -1, -1
	for i := range labels {
		c := i*groupW + groupW/2
		r := height - 1 - int(math.Round(line[i]/lineTop*float64(height-1)))
		if prevCol >= 0 {
			for x := prevCol + 1; x < c; x++ {
				frac := float64(x-prevCol) / float64(c-prevCol)
				y := int(math.Round(float64(prevRow) + frac*float64(r-prevRow)))
				cv.set(y, x, '·', lineColor)
			}
		}
		cv.set(r, c, '●', lineColor)
		prevRow, prevCol = r, c
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	var b strings.Builder
	for r := 0; r < height; r++ {
		left, right := "", ""
		switch r {
		case 0:
			left, right = formatChartLabel(barTop), formatChartLabel(lineTop)
		case height / 2:
			left, right = formatChartLabel(barTop/2), formatChartLabel(lineTop/2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", leftW, left)))
		b.WriteString(cv.renderRow(r, t.TextMuted))
		b.WriteString(axisStyle.Render(fmt.Sprintf("│%-*s", rightW, right)))
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", leftW) + "└" + strings.Repeat("─", plotW) + "┘"))
	b.WriteString("\n")

	var xl strings.Builder
	for _, l := range labels {
		l = truncate(l, groupW-1)
		lead := (groupW - lipgloss.Width(l)) / 2
		xl.WriteString(strings.Repeat(" ", lead) + l + strings.Repeat(" ", groupW-lead-lipgloss.Width(l)))
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", leftW+1) + xl.String()))
	return b.String()
}

// Legend renders a single line of colored keys.
func Legend(entries []struct {
	Marker string
	Label  string
	Color  lipgloss.Color
}) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = lipgloss.NewStyle().Foreground(e.Color).Background(t.Surface).Render(e.Marker) +
			space.Render(" ") + labelStyle.Render(e.Label)
	}
	return strings.Join(parts, space.Render("   "))
}

// Heatmap renders a binary availability matrix with one column per entry of
// cols. The highlighted column header is drawn in the accent color.
func Heatmap(rows, cols []string, cells [][]int, highlight string, width int) string {
	if len(rows) == 0 || len(cols) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r))
	}
	labelW = min(labelW, width/3)
	colW := (width - labelW - 1) / len(cols)
	if colW < 3 {
		colW = 3
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	hiStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	yes := lipgloss.NewStyle().Foreground(t.Background).Background(t.Green).Bold(true)
	no := lipgloss.NewStyle().Foreground(t.Background).Background(t.Red)
	space := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(space.Render(strings.Repeat(" ", labelW+1)))
	for _, c := range cols {
		style := headStyle
		if c == highlight {
			style = hiStyle
		}
		b.WriteString(style.Render(center(c, colW)))
	}

	for i, r := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(padRight(r, labelW)))
		b.WriteString(space.Render(" "))
		for j := range cols {
			v := 0
			if i < len(cells) && j < len(cells[i]) {
				v = cells[i][j]
			}
			if v == 1 {
				b.WriteString(yes.Render(center("✓", colW-1)))
			} else {
				b.WriteString(no.Render(center("✗", colW-1)))
			}
			b.WriteString(space.Render(" "))
		}
	}
	return b.String()
}

// GanttTask is one bar of a Gantt chart.
type GanttTask struct {
	Label string
	Start time.Time
	End   time.Time
	Color lipgloss.Color
}

// Gantt renders tasks as bars on a shared date axis, first task on top.
func Gantt(tasks []GanttTask, width int) string {
	if len(tasks) == 0 {
		return ""
	}
	t := theme.Active

	first, last := tasks[0].Start, tasks[0].End
	labelW := 0
	for _, task := range tasks {
		if task.Start.Before(first) {
			first = task.Start
		}
		if task.End.After(last) {
			last = task.End
		}
		labelW = max(labelW, lipgloss.Width(task.Label))
	}
	labelW = min(labelW, width/3)
	span := last.Sub(first)
	if span <= 0 {
		span = 24 * time.Hour
	}

	plotW := width - labelW - 2
	if plotW < 10 {
		plotW = 10
	}
	pos := func(d time.Time) int {
		return int(math.Round(float64(d.Sub(first)) / float64(span) * float64(plotW-1)))
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for _, task := range tasks {
		s, e := pos(task.Start), pos(task.End)
		if e < s {
			e = s
		}
		barStyle := lipgloss.NewStyle().Foreground(task.Color).Background(t.Surface)
		b.WriteString(labelStyle.Render(padRight(task.Label, labelW)))
		b.WriteString(axisStyle.Render(" │"))
		b.WriteString(space.Render(strings.Repeat(" ", s)))
		b.WriteString(barStyle.Render(strings.Repeat("█", e-s+1)))
		b.WriteString(space.Render(strings.Repeat(" ", max(0, plotW-e-1))))
		b.WriteString("\n")
	}

	lo, hi := first.Format("Jan 2006"), last.Format("Jan 2006")
	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelW+1) + "└" + strings.Repeat("─", plotW)))
	b.WriteString("\n")
	gap := max(1, plotW-len(lo)-len(hi))
	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelW+2) + lo + strings.Repeat(" ", gap) + hi))
	return b.String()
}

package tui

import (
	"strings"

	"github.com/theirongolddev/stoki/internal/model"
	"github.com/theirongolddev/stoki/internal/tui/components"
	"github.com/theirongolddev/stoki/internal/tui/theme"
	"github.com/theirongolddev/stoki/internal/view"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Columns narrower than this are stacked instead of placed side by side.
	minColumnWidth = 24
	// Metric tiles narrower than this are stacked.
	minTileWidth = 18

	scatterHeight = 12
	comboHeight   = 10
	barHeight     = 8
)

// mountNodes renders nodes top to bottom at the given width.
func mountNodes(nodes []view.Node, width int) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s := mountNode(n, width); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func mountNode(n view.Node, width int) string {
	t := theme.Active

	switch n.Kind {
	case view.KindHeader:
		style := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
		rule := lipgloss.NewStyle().Foreground(t.BorderAccent).Render(strings.Repeat("━", min(width, lipgloss.Width(n.Text)+4)))
		return "\n" + style.Render(n.Text) + "\n" + rule

	case view.KindSubheader:
		return "\n" + lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(n.Text)

	case view.KindMetrics:
		cards := make([]struct{ Label, Value, Delta string }, len(n.Metrics))
		for i, m := range n.Metrics {
			cards[i] = struct{ Label, Value, Delta string }{m.Label, m.Value, m.Delta}
		}
		if len(cards) > 1 && width/len(cards) < minTileWidth {
			stacked := make([]string, len(cards))
			for i, c := range cards {
				stacked[i] = components.MetricCard(c.Label, c.Value, c.Delta, width)
			}
			return strings.Join(stacked, "\n")
		}
		return components.MetricCardRow(cards, width)

	case view.KindChart:
		if n.Chart == nil {
			return ""
		}
		return components.ContentCard(n.Chart.Title, mountChart(*n.Chart, components.CardInnerWidth(width)), width)

	case view.KindGrid:
		return mountGrid(n, width)

	case view.KindColumns:
		return mountColumns(n, width)

	case view.KindMarkdown:
		return components.Markdown(n.Text, width)

	case view.KindCallout:
		return components.Callout(string(n.Tone), n.Title, n.Text, width)

	case view.KindProgress:
		if n.Progress == nil {
			return ""
		}
		return components.TargetBar(n.Progress.Ratio, n.Progress.Caption, width)

	case view.KindTable:
		if n.Table == nil {
			return ""
		}
		return components.ContentCard("", components.DataTable(n.Table.Headers, n.Table.Rows, components.CardInnerWidth(width)), width)

	case view.KindBadge:
		return components.Badge(string(n.Tone), n.Text)

	case view.KindSeparator:
		return lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", width))
	}
	return ""
}

func mountGrid(n view.Node, width int) string {
	cols := n.Columns
	if cols < 1 {
		cols = 1
	}
	if width/cols < minColumnWidth {
		cols = 1
	}
	widths := components.LayoutRow(width, cols)

	var rows []string
	for start := 0; start < len(n.Children); start += cols {
		end := min(start+cols, len(n.Children))
		cells := make([]string, 0, cols)
		for i, child := range n.Children[start:end] {
			cells = append(cells, mountNode(child, widths[i]))
		}
		rows = append(rows, components.CardRow(cells))
	}
	return strings.Join(rows, "\n")
}

func mountColumns(n view.Node, width int) string {
	if len(n.Children) == 0 {
		return ""
	}
	weights := n.Weights
	if len(weights) != len(n.Children) {
		weights = make([]int, len(n.Children))
		for i := range weights {
			weights[i] = 1
		}
	}
	widths := components.LayoutWeighted(width, weights)

	for _, w := range widths {
		if w < minColumnWidth {
			return mountNodes(n.Children, width)
		}
	}

	cells := make([]string, len(n.Children))
	for i, child := range n.Children {
		// One column of gutter between cells.
		w := widths[i]
		if i < len(widths)-1 {
			w--
		}
		cells[i] = lipgloss.NewStyle().Width(widths[i]).Render(mountNode(child, w))
	}
	return components.CardRow(cells)
}

func hex(c string) lipgloss.Color {
	if c == "" {
		return theme.Active.Accent
	}
	return lipgloss.Color(c)
}

// shortLabel drops a parenthesized suffix such as "(11-50 employees)".
func shortLabel(s string) string {
	if i := strings.Index(s, " ("); i > 0 {
		return s[:i]
	}
	return s
}

func mountChart(c view.Chart, width int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	switch c.Kind {
	case view.ChartFunnel:
		return components.Funnel(seriesBars(c, 0), width)

	case view.ChartBar:
		if len(c.Series) == 0 {
			return ""
		}
		pts := c.Series[0].Points
		labeled := false
		for _, p := range pts {
			if p.Text != "" {
				labeled = true
			}
		}
		if !labeled {
			cols := make([]components.Column, len(pts))
			for i, p := range pts {
				color := p.Color
				if color == "" {
					color = c.Series[0].Color
				}
				cols[i] = components.Column{Label: shortLabel(p.Label), Value: p.Y, Color: hex(color)}
			}
			out := components.ColumnChart(cols, width, barHeight)
			if c.YTitle != "" {
				out = dim.Render(c.YTitle) + "\n" + out
			}
			return out
		}
		peak := 0.0
		if c.YRange != nil {
			peak = c.YRange.Max
		}
		out := components.HBarChart(seriesBars(c, 0), peak, width)
		if c.YTitle != "" {
			out += "\n" + dim.Render(c.YTitle)
		}
		return out

	case view.ChartPie:
		return components.ShareBar(seriesBars(c, 0), width)

	case view.ChartScatter:
		return mountScatter(c, width)

	case view.ChartCombo:
		return mountCombo(c, width)

	case view.ChartHeatmap:
		if c.Heatmap == nil {
			return ""
		}
		h := c.Heatmap
		return components.Heatmap(h.Rows, h.Columns, h.Cells, h.Highlight, width)

	case view.ChartTimeline:
		tasks := make([]components.GanttTask, len(c.Tasks))
		seen := map[model.Status]bool{}
		var legend []struct {
			Marker string
			Label  string
			Color  lipgloss.Color
		}
		for i, task := range c.Tasks {
			tasks[i] = components.GanttTask{Label: task.Name, Start: task.Start, End: task.End, Color: hex(task.Color)}
			if !seen[task.Status] {
				seen[task.Status] = true
				legend = append(legend, struct {
					Marker string
					Label  string
					Color  lipgloss.Color
				}{"█", string(task.Status), hex(task.Color)})
			}
		}
		return components.Gantt(tasks, width) + "\n\n" + components.Legend(legend)
	}
	return ""
}

// seriesBars converts one series to bar rows, attaching category
// annotations as notes.
func seriesBars(c view.Chart, idx int) []components.Bar {
	if idx >= len(c.Series) {
		return nil
	}
	notes := make(map[string]string)
	for _, a := range c.Annotations {
		if a.Category != "" {
			notes[a.Category] = a.Text
		}
	}

	s := c.Series[idx]
	bars := make([]components.Bar, len(s.Points))
	for i, p := range s.Points {
		color := p.Color
		if color == "" {
			color = s.Color
		}
		bars[i] = components.Bar{
			Label: p.Label,
			Value: p.Y,
			Color: hex(color),
			Text:  p.Text,
			Note:  notes[p.Label],
		}
	}
	return bars
}

func mountScatter(c view.Chart, width int) string {
	var points []components.ScatterPoint
	for _, s := range c.Series {
		for _, p := range s.Points {
			note := p.Text
			if note == "" {
				note = p.Group
			} else if p.Group != "" && p.Group != p.Label && p.Text != p.Label {
				note = p.Group + ", " + p.Text
			}
			if note == p.Label {
				note = p.Group
			}
			points = append(points, components.ScatterPoint{
				Label: p.Label,
				X:     p.X,
				Y:     p.Y,
				Size:  p.Size,
				Color: hex(p.Color),
				Note:  note,
			})
		}
	}

	opts := components.ScatterOptions{XTitle: c.XTitle, YTitle: c.YTitle}
	for _, l := range c.RefLines {
		ref := components.RefLine{Value: l.Value, Label: l.Label, Color: hex(l.Color)}
		if l.Axis == view.AxisX {
			opts.VLines = append(opts.VLines, ref)
		} else {
			opts.HLines = append(opts.HLines, ref)
		}
	}
	for _, a := range c.Annotations {
		opts.Labels = append(opts.Labels, components.PlotLabel{X: a.X, Y: a.Y, Text: a.Text, Color: lipgloss.Color(a.Color)})
	}
	for _, s := range c.Shapes {
		opts.Boxes = append(opts.Boxes, components.Box{X0: s.X0, Y0: s.Y0, X1: s.X1, Y1: s.Y1, Color: hex(s.Color)})
	}
	for _, tk := range c.YTicks {
		opts.YTicks = append(opts.YTicks, components.Tick{Value: tk.Value, Label: tk.Label})
	}
	return components.ScatterPlot(points, opts, width, scatterHeight)
}

func mountCombo(c view.Chart, width int) string {
	var bars, line *view.Series
	for i := range c.Series {
		switch c.Series[i].Kind {
		case view.SeriesLine:
			line = &c.Series[i]
		default:
			if bars == nil {
				bars = &c.Series[i]
			}
		}
	}
	if bars == nil || line == nil {
		return ""
	}

	labels := make([]string, len(bars.Points))
	barVals := make([]float64, len(bars.Points))
	for i, p := range bars.Points {
		labels[i] = p.Label
		barVals[i] = p.Y
	}
	lineVals := make([]float64, len(bars.Points))
	for i := range lineVals {
		if i < len(line.Points) {
			lineVals[i] = line.Points[i].Y
		}
	}

	chart := components.ComboChart(labels, barVals, lineVals, hex(bars.Color), hex(line.Color), width, comboHeight)
	legend := components.Legend([]struct {
		Marker string
		Label  string
		Color  lipgloss.Color
	}{
		{"█", bars.Name + " (left)", hex(bars.Color)},
		{"●", line.Name + " (right)", hex(line.Color)},
	})
	return chart + "\n\n" + legend
}

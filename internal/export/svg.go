package export

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/theirongolddev/stoki/internal/view"

	svg "github.com/ajstarks/svgo"
)

const (
	svgWidth  = 960
	svgHeight = 540

	marginLeft   = 90
	marginRight  = 40
	marginTop    = 70
	marginBottom = 80

	colorBackdrop = "#FFFFFF"
	colorText     = "#1F2937"
	colorSubtle   = "#6B7280"
	colorGrid     = "#E5E7EB"
	colorDefault  = "#3B82F6"

	fontFamily = "font-family:Helvetica,Arial,sans-serif"
)

// plot is the drawable region inside the margins.
type plot struct {
	x0, y0, x1, y1 int
}

func defaultPlot() plot {
	return plot{marginLeft, marginTop, svgWidth - marginRight, svgHeight - marginBottom}
}

func (p plot) width() int  { return p.x1 - p.x0 }
func (p plot) height() int { return p.y1 - p.y0 }

// linear maps [lo,hi] onto [a,b].
type linear struct {
	lo, hi float64
	a, b   int
}

func (s linear) at(v float64) int {
	if s.hi == s.lo {
		return s.a
	}
	return s.a + int(math.Round((v-s.lo)/(s.hi-s.lo)*float64(s.b-s.a)))
}

func textStyle(size int, color string, extra ...string) string {
	s := fmt.Sprintf("fill:%s;font-size:%dpx;%s", color, size, fontFamily)
	for _, e := range extra {
		s += ";" + e
	}
	return s
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}

// ChartSVG draws c as a standalone SVG document.
func ChartSVG(w io.Writer, c view.Chart) error {
	canvas := svg.New(w)
	canvas.Start(svgWidth, svgHeight)
	canvas.Rect(0, 0, svgWidth, svgHeight, "fill:"+colorBackdrop)
	canvas.Text(svgWidth/2, 36, c.Title, textStyle(20, colorText, "text-anchor:middle", "font-weight:bold"))

	var err error
	switch c.Kind {
	case view.ChartFunnel:
		drawFunnel(canvas, c)
	case view.ChartBar:
		drawBars(canvas, c)
	case view.ChartPie:
		drawPie(canvas, c)
	case view.ChartScatter:
		drawScatter(canvas, c)
	case view.ChartCombo:
		drawCombo(canvas, c)
	case view.ChartHeatmap:
		drawHeatmap(canvas, c)
	case view.ChartTimeline:
		drawTimeline(canvas, c)
	default:
		err = fmt.Errorf("unsupported chart kind %q", c.Kind)
	}

	canvas.End()
	return err
}

func firstSeries(c view.Chart) view.Series {
	if len(c.Series) == 0 {
		return view.Series{}
	}
	return c.Series[0]
}

func peakOf(points []view.Point) float64 {
	peak := 0.0
	for _, p := range points {
		peak = math.Max(peak, p.Y)
	}
	return peak
}

func drawAxes(canvas *svg.SVG, p plot, xTitle, yTitle string) {
	canvas.Line(p.x0, p.y1, p.x1, p.y1, "stroke:"+colorSubtle)
	canvas.Line(p.x0, p.y0, p.x0, p.y1, "stroke:"+colorSubtle)
	if xTitle != "" {
		canvas.Text((p.x0+p.x1)/2, svgHeight-20, xTitle, textStyle(13, colorSubtle, "text-anchor:middle"))
	}
	if yTitle != "" {
		canvas.Text(24, (p.y0+p.y1)/2, yTitle,
			textStyle(13, colorSubtle, "text-anchor:middle"),
			fmt.Sprintf(`transform="rotate(-90 24 %d)"`, (p.y0+p.y1)/2))
	}
}

func drawYGrid(canvas *svg.SVG, p plot, ys linear, ticks int, label func(float64) string) {
	for i := 0; i <= ticks; i++ {
		v := ys.lo + (ys.hi-ys.lo)*float64(i)/float64(ticks)
		y := ys.at(v)
		canvas.Line(p.x0, y, p.x1, y, "stroke:"+colorGrid)
		canvas.Text(p.x0-8, y+4, label(v), textStyle(11, colorSubtle, "text-anchor:end"))
	}
}

func compact(v float64) string {
	switch {
	case math.Abs(v) >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case math.Abs(v) >= 1e3:
		return fmt.Sprintf("%.0fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func drawFunnel(canvas *svg.SVG, c view.Chart) {
	s := firstSeries(c)
	if len(s.Points) == 0 {
		return
	}
	p := defaultPlot()
	peak := peakOf(s.Points)
	rowH := p.height() / len(s.Points)
	mid := (p.x0 + p.x1) / 2

	// Widths are rank-scaled so small stages stay visible next to TAM.
	for i, pt := range s.Points {
		frac := 1 - float64(i)/float64(len(s.Points)+1)
		if peak > 0 && pt.Y/peak > frac {
			frac = pt.Y / peak
		}
		w := int(float64(p.width()) * frac)
		y := p.y0 + i*rowH
		canvas.Rect(mid-w/2, y+4, w, rowH-8, "fill:"+colorOr(pt.Color, colorDefault))
		canvas.Text(mid, y+rowH/2, pt.Label, textStyle(14, "#FFFFFF", "text-anchor:middle", "font-weight:bold"))
		if pt.Text != "" {
			canvas.Text(mid, y+rowH/2+18, pt.Text, textStyle(12, "#FFFFFF", "text-anchor:middle"))
		}
	}
}

func drawBars(canvas *svg.SVG, c view.Chart) {
	s := firstSeries(c)
	if len(s.Points) == 0 {
		return
	}
	p := defaultPlot()
	hi := peakOf(s.Points) * 1.1
	lo := 0.0
	if c.YRange != nil {
		lo, hi = c.YRange.Min, c.YRange.Max
	}
	ys := linear{lo, hi, p.y1, p.y0}
	drawYGrid(canvas, p, ys, 5, compact)
	drawAxes(canvas, p, c.XTitle, c.YTitle)

	notes := make(map[string]view.Annotation)
	for _, a := range c.Annotations {
		if a.Category != "" {
			notes[a.Category] = a
		}
	}

	slot := p.width() / len(s.Points)
	barW := slot * 6 / 10
	for i, pt := range s.Points {
		x := p.x0 + i*slot + (slot-barW)/2
		y := ys.at(pt.Y)
		canvas.Rect(x, y, barW, p.y1-y, "fill:"+colorOr(pt.Color, colorOr(s.Color, colorDefault)))
		if pt.Text != "" {
			canvas.Text(x+barW/2, y-6, pt.Text, textStyle(12, colorText, "text-anchor:middle"))
		}
		canvas.Text(x+barW/2, p.y1+18, pt.Label, textStyle(11, colorSubtle, "text-anchor:middle"))
		if a, ok := notes[pt.Label]; ok {
			canvas.Text(x+barW/2, ys.at(a.Y)-20, a.Text, textStyle(12, colorOr(a.Color, colorText), "text-anchor:middle", "font-weight:bold"))
		}
	}
}

func drawPie(canvas *svg.SVG, c view.Chart) {
	s := firstSeries(c)
	total := 0.0
	for _, pt := range s.Points {
		total += pt.Y
	}
	if total <= 0 {
		return
	}

	cx, cy, r := svgWidth/2-120, svgHeight/2+20, 180
	angle := -math.Pi / 2
	for i, pt := range s.Points {
		sweep := pt.Y / total * 2 * math.Pi
		x0 := float64(cx) + float64(r)*math.Cos(angle)
		y0 := float64(cy) + float64(r)*math.Sin(angle)
		x1 := float64(cx) + float64(r)*math.Cos(angle+sweep)
		y1 := float64(cy) + float64(r)*math.Sin(angle+sweep)
		large := 0
		if sweep > math.Pi {
			large = 1
		}
		d := fmt.Sprintf("M %d %d L %.2f %.2f A %d %d 0 %d 1 %.2f %.2f Z", cx, cy, x0, y0, r, r, large, x1, y1)
		color := colorOr(pt.Color, colorDefault)
		canvas.Path(d, "fill:"+color+";stroke:#FFFFFF;stroke-width:2")

		ly := marginTop + 20 + i*28
		canvas.Rect(svgWidth-330, ly-12, 16, 16, "fill:"+color)
		canvas.Text(svgWidth-306, ly+1, fmt.Sprintf("%s (%.1f%%)", pt.Label, pt.Y/total*100), textStyle(13, colorText))
		angle += sweep
	}
}

// scatterRanges spans every point, reference line and shape.
func scatterRanges(c view.Chart) (linear, linear) {
	p := defaultPlot()
	xlo, xhi := math.Inf(1), math.Inf(-1)
	ylo, yhi := math.Inf(1), math.Inf(-1)
	include := func(x, y float64) {
		xlo, xhi = math.Min(xlo, x), math.Max(xhi, x)
		ylo, yhi = math.Min(ylo, y), math.Max(yhi, y)
	}
	for _, s := range c.Series {
		for _, pt := range s.Points {
			include(pt.X, pt.Y)
		}
	}
	for _, sh := range c.Shapes {
		include(sh.X0, sh.Y0)
		include(sh.X1, sh.Y1)
	}
	if math.IsInf(xlo, 1) {
		xlo, xhi, ylo, yhi = 0, 1, 0, 1
	}
	for _, l := range c.RefLines {
		if l.Axis == view.AxisX {
			xlo, xhi = math.Min(xlo, l.Value), math.Max(xhi, l.Value)
		} else {
			ylo, yhi = math.Min(ylo, l.Value), math.Max(yhi, l.Value)
		}
	}
	padX := (xhi - xlo) * 0.1
	padY := (yhi - ylo) * 0.1
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	return linear{xlo - padX, xhi + padX, p.x0, p.x1}, linear{ylo - padY, yhi + padY, p.y1, p.y0}
}

func drawScatter(canvas *svg.SVG, c view.Chart) {
	p := defaultPlot()
	xs, ys := scatterRanges(c)

	if len(c.YTicks) > 0 {
		for _, tk := range c.YTicks {
			y := ys.at(tk.Value)
			canvas.Line(p.x0, y, p.x1, y, "stroke:"+colorGrid)
			canvas.Text(p.x0-8, y+4, tk.Label, textStyle(11, colorSubtle, "text-anchor:end"))
		}
	} else {
		drawYGrid(canvas, p, ys, 5, compact)
	}
	drawAxes(canvas, p, c.XTitle, c.YTitle)

	for _, l := range c.RefLines {
		style := "stroke:" + colorOr(l.Color, colorSubtle) + ";stroke-width:1.5"
		if l.Dashed {
			style += ";stroke-dasharray:6,4"
		}
		if l.Axis == view.AxisX {
			x := xs.at(l.Value)
			canvas.Line(x, p.y0, x, p.y1, style)
			canvas.Text(x+4, p.y0+14, l.Label, textStyle(11, colorOr(l.Color, colorSubtle)))
		} else {
			y := ys.at(l.Value)
			canvas.Line(p.x0, y, p.x1, y, style)
			canvas.Text(p.x1-4, y-6, l.Label, textStyle(11, colorOr(l.Color, colorSubtle), "text-anchor:end"))
		}
	}

	for _, sh := range c.Shapes {
		cx := (xs.at(sh.X0) + xs.at(sh.X1)) / 2
		cy := (ys.at(sh.Y0) + ys.at(sh.Y1)) / 2
		rx := absInt(xs.at(sh.X1)-xs.at(sh.X0)) / 2
		ry := absInt(ys.at(sh.Y1)-ys.at(sh.Y0)) / 2
		canvas.Ellipse(cx, cy, rx, ry, "fill:none;stroke:"+colorOr(sh.Color, colorDefault)+";stroke-width:3")
	}

	peakSize := 0.0
	for _, s := range c.Series {
		for _, pt := range s.Points {
			peakSize = math.Max(peakSize, pt.Size)
		}
	}
	for _, s := range c.Series {
		for _, pt := range s.Points {
			r := 8
			if peakSize > 0 && pt.Size > 0 {
				r = 6 + int(math.Sqrt(pt.Size/peakSize)*24)
			}
			x, y := xs.at(pt.X), ys.at(pt.Y)
			canvas.Circle(x, y, r, "fill:"+colorOr(pt.Color, colorOr(s.Color, colorDefault))+";fill-opacity:0.75")
			canvas.Text(x, y-r-4, pt.Label, textStyle(11, colorText, "text-anchor:middle"))
		}
	}

	for _, a := range c.Annotations {
		canvas.Text(xs.at(a.X), ys.at(a.Y), a.Text, textStyle(13, colorOr(a.Color, colorText), "text-anchor:middle", "font-weight:bold"))
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func drawCombo(canvas *svg.SVG, c view.Chart) {
	var bars, line view.Series
	for _, s := range c.Series {
		if s.Kind == view.SeriesLine {
			line = s
		} else if len(bars.Points) == 0 {
			bars = s
		}
	}
	if len(bars.Points) == 0 {
		return
	}

	p := defaultPlot()
	left := linear{0, peakOf(bars.Points) * 1.15, p.y1, p.y0}
	right := linear{0, peakOf(line.Points) * 1.15, p.y1, p.y0}
	drawYGrid(canvas, p, left, 5, compact)
	drawAxes(canvas, p, c.XTitle, c.YTitle)
	canvas.Line(p.x1, p.y0, p.x1, p.y1, "stroke:"+colorSubtle)
	for i := 0; i <= 5; i++ {
		v := right.hi * float64(i) / 5
		canvas.Text(p.x1+6, right.at(v)+4, compact(v), textStyle(11, colorSubtle))
	}

	slot := p.width() / len(bars.Points)
	barW := slot / 2
	lineColor := colorOr(line.Color, "#10B981")
	var path []string
	var dots [][2]int
	for i, pt := range bars.Points {
		cx := p.x0 + i*slot + slot/2
		y := left.at(pt.Y)
		canvas.Rect(cx-barW/2, y, barW, p.y1-y, "fill:"+colorOr(bars.Color, colorDefault))
		canvas.Text(cx, p.y1+18, pt.Label, textStyle(12, colorSubtle, "text-anchor:middle"))
		if i < len(line.Points) {
			ly := right.at(line.Points[i].Y)
			path = append(path, fmt.Sprintf("%d %d", cx, ly))
			dots = append(dots, [2]int{cx, ly})
		}
	}
	if len(path) > 0 {
		canvas.Path("M "+strings.Join(path, " L "), "fill:none;stroke:"+lineColor+";stroke-width:3")
		for _, d := range dots {
			canvas.Circle(d[0], d[1], 5, "fill:"+lineColor)
		}
	}

	canvas.Rect(p.x0, svgHeight-36, 14, 14, "fill:"+colorOr(bars.Color, colorDefault))
	canvas.Text(p.x0+20, svgHeight-24, bars.Name, textStyle(12, colorText))
	canvas.Circle(p.x0+220, svgHeight-29, 6, "fill:"+lineColor)
	canvas.Text(p.x0+232, svgHeight-24, line.Name, textStyle(12, colorText))
}

func drawHeatmap(canvas *svg.SVG, c view.Chart) {
	h := c.Heatmap
	if h == nil || len(h.Rows) == 0 || len(h.Columns) == 0 {
		return
	}
	const labelW = 200
	x0, y0 := 40+labelW, marginTop+30
	cellW := (svgWidth - x0 - marginRight) / len(h.Columns)
	cellH := (svgHeight - y0 - 30) / len(h.Rows)

	for j, col := range h.Columns {
		style := textStyle(12, colorSubtle, "text-anchor:middle")
		if col == h.Highlight {
			style = textStyle(12, colorText, "text-anchor:middle", "font-weight:bold")
		}
		canvas.Text(x0+j*cellW+cellW/2, y0-10, col, style)
	}
	for i, row := range h.Rows {
		y := y0 + i*cellH
		canvas.Text(x0-10, y+cellH/2+4, row, textStyle(12, colorText, "text-anchor:end"))
		for j := range h.Columns {
			fill := "#FEE2E2"
			mark := "✗"
			if i < len(h.Cells) && j < len(h.Cells[i]) && h.Cells[i][j] == 1 {
				fill = "#16A34A"
				mark = "✓"
			}
			x := x0 + j*cellW
			canvas.Rect(x, y, cellW, cellH, "fill:"+fill+";stroke:#FFFFFF;stroke-width:2")
			canvas.Text(x+cellW/2, y+cellH/2+5, mark, textStyle(14, colorText, "text-anchor:middle"))
		}
	}
}

func drawTimeline(canvas *svg.SVG, c view.Chart) {
	if len(c.Tasks) == 0 {
		return
	}
	start, end := c.Tasks[0].Start, c.Tasks[0].End
	for _, t := range c.Tasks {
		if t.Start.Before(start) {
			start = t.Start
		}
		if t.End.After(end) {
			end = t.End
		}
	}

	const labelW = 220
	p := plot{40 + labelW, marginTop + 10, svgWidth - marginRight, svgHeight - marginBottom}
	xs := linear{float64(start.Unix()), float64(end.Unix()), p.x0, p.x1}
	rowH := p.height() / len(c.Tasks)

	for m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !m.After(end); m = m.AddDate(0, 1, 0) {
		if m.Before(start) {
			continue
		}
		x := xs.at(float64(m.Unix()))
		canvas.Line(x, p.y0, x, p.y1, "stroke:"+colorGrid)
		canvas.Text(x, p.y1+18, m.Format("Jan 2006"), textStyle(11, colorSubtle, "text-anchor:middle"))
	}

	for i, t := range c.Tasks {
		y := p.y0 + i*rowH
		x0, x1 := xs.at(float64(t.Start.Unix())), xs.at(float64(t.End.Unix()))
		canvas.Text(p.x0-10, y+rowH/2+4, t.Name, textStyle(12, colorText, "text-anchor:end"))
		canvas.Roundrect(x0, y+6, max(x1-x0, 2), rowH-12, 4, 4, "fill:"+colorOr(t.Color, colorDefault))
		canvas.Text(x1+6, y+rowH/2+4, string(t.Status), textStyle(11, colorSubtle))
	}
}

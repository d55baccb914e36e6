// Package view builds the dashboard page as a plain tree of nodes. It never
// draws anything; the TUI and the exporters decide how a node looks.
package view

import (
	"time"

	"github.com/theirongolddev/stoki/internal/model"
)

// Kind identifies what a Node displays.
type Kind string

const (
	KindHeader    Kind = "header"
	KindSubheader Kind = "subheader"
	KindMetrics   Kind = "metrics"
	KindChart     Kind = "chart"
	KindGrid      Kind = "grid"
	KindColumns   Kind = "columns"
	KindMarkdown  Kind = "markdown"
	KindCallout   Kind = "callout"
	KindProgress  Kind = "progress"
	KindTable     Kind = "table"
	KindBadge     Kind = "badge"
	KindSeparator Kind = "separator"
)

// Page is one fully rendered focus.
type Page struct {
	Focus    Focus  `json:"focus" yaml:"focus"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Sidebar  []Node `json:"sidebar" yaml:"sidebar"`
	Body     []Node `json:"body" yaml:"body"`
	Footer   []Node `json:"footer" yaml:"footer"`
}

// Node is a single element of the page. Only the fields relevant to Kind
// are set.
type Node struct {
	Kind     Kind       `json:"kind" yaml:"kind"`
	Text     string     `json:"text,omitempty" yaml:"text,omitempty"`
	Title    string     `json:"title,omitempty" yaml:"title,omitempty"`
	Tone     model.Tone `json:"tone,omitempty" yaml:"tone,omitempty"`
	Metrics  []Metric   `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Chart    *Chart     `json:"chart,omitempty" yaml:"chart,omitempty"`
	Progress *Progress  `json:"progress,omitempty" yaml:"progress,omitempty"`
	Table    *Table     `json:"table,omitempty" yaml:"table,omitempty"`
	Columns  int        `json:"columns,omitempty" yaml:"columns,omitempty"` // grid only
	Weights  []int      `json:"weights,omitempty" yaml:"weights,omitempty"` // columns only
	Children []Node     `json:"children,omitempty" yaml:"children,omitempty"`
}

// Metric is a tile: a label, a headline value and a smaller delta line.
type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Delta string `json:"delta,omitempty" yaml:"delta,omitempty"`
}

// Progress is a bar filled to Ratio (0-1) with a caption underneath.
type Progress struct {
	Ratio   float64 `json:"ratio" yaml:"ratio"`
	Caption string  `json:"caption" yaml:"caption"`
}

// Table is a plain grid of strings.
type Table struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// ChartKind selects how a chart's series are drawn.
type ChartKind string

const (
	ChartFunnel   ChartKind = "funnel"
	ChartBar      ChartKind = "bar"
	ChartScatter  ChartKind = "scatter"
	ChartHeatmap  ChartKind = "heatmap"
	ChartPie      ChartKind = "pie"
	ChartCombo    ChartKind = "combo"
	ChartTimeline ChartKind = "timeline"
)

// SeriesKind is how one series of a combo chart is drawn.
type SeriesKind string

const (
	SeriesBar  SeriesKind = "bar"
	SeriesLine SeriesKind = "line"
)

// Chart describes a chart independent of any renderer.
type Chart struct {
	Kind        ChartKind    `json:"kind" yaml:"kind"`
	Title       string       `json:"title" yaml:"title"`
	XTitle      string       `json:"x_title,omitempty" yaml:"x_title,omitempty"`
	YTitle      string       `json:"y_title,omitempty" yaml:"y_title,omitempty"`
	Y2Title     string       `json:"y2_title,omitempty" yaml:"y2_title,omitempty"`
	Series      []Series     `json:"series,omitempty" yaml:"series,omitempty"`
	RefLines    []RefLine    `json:"ref_lines,omitempty" yaml:"ref_lines,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Shapes      []Shape      `json:"shapes,omitempty" yaml:"shapes,omitempty"`
	Heatmap     *Heatmap     `json:"heatmap,omitempty" yaml:"heatmap,omitempty"`
	Tasks       []Task       `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	YRange      *Range       `json:"y_range,omitempty" yaml:"y_range,omitempty"`
	YTicks      []Tick       `json:"y_ticks,omitempty" yaml:"y_ticks,omitempty"`
}

// Series is a named run of points. Axis 1 is the secondary y axis.
type Series struct {
	Name   string     `json:"name" yaml:"name"`
	Kind   SeriesKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Axis   int        `json:"axis,omitempty" yaml:"axis,omitempty"`
	Color  string     `json:"color,omitempty" yaml:"color,omitempty"`
	Points []Point    `json:"points" yaml:"points"`
}

// Point is a datum. Category charts use Label and Y; scatter charts use X,
// Y and Size.
type Point struct {
	Label string  `json:"label" yaml:"label"`
	X     float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y     float64 `json:"y" yaml:"y"`
	Size  float64 `json:"size,omitempty" yaml:"size,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
	Text  string  `json:"text,omitempty" yaml:"text,omitempty"`
	Group string  `json:"group,omitempty" yaml:"group,omitempty"`
}

// Axis names for reference lines.
const (
	AxisX = "x"
	AxisY = "y"
)

// RefLine is a straight line across the plot at Value on Axis.
type RefLine struct {
	Axis   string  `json:"axis" yaml:"axis"`
	Value  float64 `json:"value" yaml:"value"`
	Label  string  `json:"label,omitempty" yaml:"label,omitempty"`
	Color  string  `json:"color,omitempty" yaml:"color,omitempty"`
	Dashed bool    `json:"dashed,omitempty" yaml:"dashed,omitempty"`
}

// Annotation is free text placed in data coordinates. Category charts set
// Category instead of X.
type Annotation struct {
	X        float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y        float64 `json:"y" yaml:"y"`
	Category string  `json:"category,omitempty" yaml:"category,omitempty"`
	Text     string  `json:"text" yaml:"text"`
	Color    string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Shape is an outline drawn in data coordinates. Only circles are used.
type Shape struct {
	Kind  string  `json:"kind" yaml:"kind"`
	X0    float64 `json:"x0" yaml:"x0"`
	Y0    float64 `json:"y0" yaml:"y0"`
	X1    float64 `json:"x1" yaml:"x1"`
	Y1    float64 `json:"y1" yaml:"y1"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Heatmap is a binary matrix: Cells[row][col] is 1 when Rows[row] is
// available for Columns[col].
type Heatmap struct {
	Rows      []string `json:"rows" yaml:"rows"`
	Columns   []string `json:"columns" yaml:"columns"`
	Cells     [][]int  `json:"cells" yaml:"cells"`
	Highlight string   `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

// Task is one bar of a timeline chart.
type Task struct {
	Name   string       `json:"name" yaml:"name"`
	Start  time.Time    `json:"start" yaml:"start"`
	End    time.Time    `json:"end" yaml:"end"`
	Status model.Status `json:"status" yaml:"status"`
	Color  string       `json:"color" yaml:"color"`
}

// Range bounds an axis.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Tick replaces the numeric label at Value.
type Tick struct {
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
}

func header(text string) Node    { return Node{Kind: KindHeader, Text: text} }
func subheader(text string) Node { return Node{Kind: KindSubheader, Text: text} }
func markdown(text string) Node  { return Node{Kind: KindMarkdown, Text: text} }
func separator() Node            { return Node{Kind: KindSeparator} }

func metrics(m ...Metric) Node { return Node{Kind: KindMetrics, Metrics: m} }

func chart(c Chart) Node { return Node{Kind: KindChart, Chart: &c} }

func callout(tone model.Tone, title, text string) Node {
	return Node{Kind: KindCallout, Tone: tone, Title: title, Text: text}
}

func badge(tone model.Tone, text string) Node {
	return Node{Kind: KindBadge, Tone: tone, Text: text}
}

func progress(ratio float64, caption string) Node {
	return Node{Kind: KindProgress, Progress: &Progress{Ratio: ratio, Caption: caption}}
}

func table(t Table) Node { return Node{Kind: KindTable, Table: &t} }

func grid(columns int, children ...Node) Node {
	return Node{Kind: KindGrid, Columns: columns, Children: children}
}

func columns(weights []int, children ...Node) Node {
	return Node{Kind: KindColumns, Weights: weights, Children: children}
}

// Walk visits every node depth first, parents before children.
func Walk(nodes []Node, fn func(Node)) {
	for _, n := range nodes {
		fn(n)
		Walk(n.Children, fn)
	}
}

// Charts returns every chart on the page in document order.
func (p Page) Charts() []Chart {
	var out []Chart
	collect := func(n Node) {
		if n.Kind == KindChart && n.Chart != nil {
			out = append(out, *n.Chart)
		}
	}
	Walk(p.Sidebar, collect)
	Walk(p.Body, collect)
	Walk(p.Footer, collect)
	return out
}

package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/stoki/internal/dataset"

	"github.com/goccy/go-json"
)

func findMetric(nodes []Node, label string) (Metric, bool) {
	var found Metric
	var ok bool
	Walk(nodes, func(n Node) {
		for _, m := range n.Metrics {
			if m.Label == label && !ok {
				found, ok = m, true
			}
		}
	})
	return found, ok
}

func findChart(p Page, kind ChartKind) (Chart, bool) {
	for _, c := range p.Charts() {
		if c.Kind == kind {
			return c, true
		}
	}
	return Chart{}, false
}

func TestRenderIsIdempotent(t *testing.T) {
	tables := dataset.Generate()
	for _, f := range All() {
		a, err := json.Marshal(Render(f, tables))
		if err != nil {
			t.Fatalf("%s: marshal: %v", f, err)
		}
		b, err := json.Marshal(Render(f, tables))
		if err != nil {
			t.Fatalf("%s: marshal: %v", f, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s: two renders differ", f)
		}
	}
}

func TestRenderDoesNotMutateTables(t *testing.T) {
	tables := dataset.Generate()
	before, _ := json.Marshal(tables)
	for _, f := range All() {
		Render(f, tables)
	}
	after, _ := json.Marshal(tables)
	if !bytes.Equal(before, after) {
		t.Error("rendering changed the tables")
	}
}

func TestEveryFocusHasSidebarAndFooter(t *testing.T) {
	tables := dataset.Generate()
	for _, f := range All() {
		p := Render(f, tables)
		if p.Focus != f {
			t.Errorf("page focus = %s, want %s", p.Focus, f)
		}
		if len(p.Body) == 0 || p.Body[0].Kind != KindHeader {
			t.Errorf("%s: body should open with a header", f)
		}
		callouts := 0
		for _, n := range p.Sidebar {
			if n.Kind == KindCallout {
				callouts++
			}
		}
		if callouts != 3 {
			t.Errorf("%s: sidebar callouts = %d, want 3", f, callouts)
		}
		if len(p.Footer) == 0 || !strings.Contains(p.Footer[len(p.Footer)-1].Text, "R698,000/month") {
			t.Errorf("%s: footer missing strategic summary", f)
		}
	}
}

func TestSidebarQuickStats(t *testing.T) {
	side := Sidebar(dataset.Generate())
	tests := []struct {
		label, value, delta string
	}{
		{"Target SOM", "40,000 SMMEs", ""},
		{"Projected ARPU", "R349/month", ""},
		{"Target CAC", "R550", ""},
		{"Q1 Signups", "217", "17"},
	}
	for _, tt := range tests {
		m, ok := findMetric(side, tt.label)
		if !ok {
			t.Errorf("missing %q", tt.label)
			continue
		}
		if m.Value != tt.value || m.Delta != tt.delta {
			t.Errorf("%s = %q/%q, want %q/%q", tt.label, m.Value, m.Delta, tt.value, tt.delta)
		}
	}
}

func TestPerformanceTrackerTiles(t *testing.T) {
	p := Render(PerformanceTracker, dataset.Generate())
	tests := []struct {
		label, value, delta string
	}{
		{"Business Signups", "217", "+17"},
		{"Monthly Recurring Revenue", "R75,000", "75% of target"},
		{"Customer Acquisition Cost", "R520", "13% below target"},
		{"Customer Satisfaction", "4.2/5.0", "+5%"},
	}
	for _, tt := range tests {
		m, ok := findMetric(p.Body, tt.label)
		if !ok {
			t.Errorf("missing tile %q", tt.label)
			continue
		}
		if m.Value != tt.value || m.Delta != tt.delta {
			t.Errorf("%s = %q/%q, want %q/%q", tt.label, m.Value, m.Delta, tt.value, tt.delta)
		}
	}
}

func TestPerformanceTrackerProgressClamped(t *testing.T) {
	p := Render(PerformanceTracker, dataset.Generate())
	var bars []Progress
	Walk(p.Body, func(n Node) {
		if n.Kind == KindProgress {
			bars = append(bars, *n.Progress)
		}
	})
	if len(bars) != dataset.ResultRows {
		t.Fatalf("progress rows = %d, want %d", len(bars), dataset.ResultRows)
	}
	for _, b := range bars {
		if b.Ratio < 0 || b.Ratio > 1 {
			t.Errorf("ratio %v outside [0,1]", b.Ratio)
		}
	}
	if bars[0].Ratio != 1 {
		t.Errorf("signups overshoot should clamp to 1, got %v", bars[0].Ratio)
	}
	if want := "Target: 100,000 R/month (75%)"; bars[dataset.ResultMRR].Caption != want {
		t.Errorf("MRR caption = %q, want %q", bars[dataset.ResultMRR].Caption, want)
	}
}

func TestHeatmapMatchesFeatureMatrix(t *testing.T) {
	tables := dataset.Generate()
	c, ok := findChart(Render(CompetitiveLandscape, tables), ChartHeatmap)
	if !ok || c.Heatmap == nil {
		t.Fatal("no heatmap on competitive landscape")
	}
	h := c.Heatmap
	if len(h.Rows) != dataset.FeatureRows || len(h.Columns) != len(tables.Features.Companies) {
		t.Fatalf("heatmap is %dx%d", len(h.Rows), len(h.Columns))
	}
	for r, row := range tables.Features.Rows {
		for col, has := range row.Support {
			want := 0
			if has {
				want = 1
			}
			if h.Cells[r][col] != want {
				t.Errorf("%s/%s = %d, want %d", row.Feature, h.Columns[col], h.Cells[r][col], want)
			}
		}
	}
	// CapitFlow has no invoicing; a presence check on the column would miss this.
	if h.Cells[0][tables.Features.CompanyIndex("CapitFlow")] != 0 {
		t.Error("CapitFlow invoicing should be 0")
	}
}

func TestCoverageTiles(t *testing.T) {
	p := Render(CompetitiveLandscape, dataset.Generate())
	tests := []struct {
		label, value, delta string
	}{
		{"Stoki Feature Coverage", "100%", "7/7 features"},
		{"Competitor Average", "54%", "3.8/7 features"},
		{"Stoki Advantage", "46%", "+3.2 features"},
	}
	for _, tt := range tests {
		m, ok := findMetric(p.Body, tt.label)
		if !ok {
			t.Errorf("missing tile %q", tt.label)
			continue
		}
		if m.Value != tt.value || m.Delta != tt.delta {
			t.Errorf("%s = %q/%q, want %q/%q", tt.label, m.Value, m.Delta, tt.value, tt.delta)
		}
	}
}

func TestCompetitiveLandscapeExcludesTargetFromShare(t *testing.T) {
	p := Render(CompetitiveLandscape, dataset.Generate())
	bar, ok := findChart(p, ChartBar)
	if !ok {
		t.Fatal("no market share chart")
	}
	for _, pt := range bar.Series[0].Points {
		if strings.HasPrefix(pt.Label, dataset.TargetCompany) {
			t.Errorf("target %q should not appear in market share", pt.Label)
		}
	}
	if got := bar.Series[0].Points[0].Text; got != "25.8%" {
		t.Errorf("first bar text = %q, want 25.8%%", got)
	}

	scatter, _ := findChart(p, ChartScatter)
	if len(scatter.RefLines) != 2 {
		t.Fatalf("ref lines = %d, want 2", len(scatter.RefLines))
	}
	if scatter.RefLines[0].Value != 550 || scatter.RefLines[1].Value != 349 {
		t.Errorf("ref lines at %v/%v, want 550/349", scatter.RefLines[0].Value, scatter.RefLines[1].Value)
	}
}

func TestMarketOverviewFunnel(t *testing.T) {
	p := Render(MarketOverview, dataset.Generate())
	c, ok := findChart(p, ChartFunnel)
	if !ok {
		t.Fatal("no funnel")
	}
	pts := c.Series[0].Points
	for i := 1; i < len(pts); i++ {
		if pts[i].Y > pts[i-1].Y {
			t.Errorf("funnel grows at %s", pts[i].Label)
		}
	}
	if pts[0].Label != "TAM (750,000)" {
		t.Errorf("first label = %q", pts[0].Label)
	}

	m, _ := findMetric(p.Body, "Current Digital Adoption")
	if m.Delta != "6.4% of SAM" {
		t.Errorf("adoption delta = %q", m.Delta)
	}

	bar, _ := findChart(p, ChartBar)
	if len(bar.Annotations) != 3 {
		t.Errorf("addressed annotations = %d, want 3", len(bar.Annotations))
	}
	if bar.YRange == nil || bar.YRange.Max != 50 {
		t.Error("pain point chart should be fixed to 0-50")
	}
}

func TestTargetSegmentationGrid(t *testing.T) {
	p := Render(TargetSegmentation, dataset.Generate())
	var g *Node
	for i := range p.Body {
		if p.Body[i].Kind == KindGrid {
			g = &p.Body[i]
		}
	}
	if g == nil {
		t.Fatal("no grid")
	}
	if g.Columns != 2 || len(g.Children) != 4 {
		t.Fatalf("grid %d cols, %d children", g.Columns, len(g.Children))
	}
	if g.Children[0].Chart.Kind != ChartPie {
		t.Errorf("first cell = %s, want pie", g.Children[0].Chart.Kind)
	}
	m, _ := findMetric(p.Body, "ARPU Potential")
	if m.Value != "R349" {
		t.Errorf("ARPU tile = %q", m.Value)
	}
}

func TestPositioningBestValue(t *testing.T) {
	p := Render(PositioningStrategy, dataset.Generate())
	var pricing Chart
	for _, c := range p.Charts() {
		if c.Title == "Competitive Pricing Positioning" {
			pricing = c
		}
	}
	if len(pricing.Annotations) != 1 || pricing.Annotations[0].Category != "Stoki Pro" {
		t.Fatalf("best value annotation = %+v", pricing.Annotations)
	}
	if pricing.Series[0].Points[1].Text != "R349/month" {
		t.Errorf("pro text = %q", pricing.Series[0].Points[1].Text)
	}

	scatter, _ := findChart(p, ChartScatter)
	if len(scatter.Shapes) != 1 || len(scatter.Annotations) != 4 {
		t.Errorf("positioning map has %d shapes, %d labels", len(scatter.Shapes), len(scatter.Annotations))
	}
}

func TestRoadmapSeparators(t *testing.T) {
	tables := dataset.Generate()
	p := Render(GoToMarketPlan, tables)
	badges, seps := 0, 0
	for _, n := range p.Body {
		if n.Kind == KindSeparator {
			seps++
		}
		for _, c := range n.Children {
			if c.Kind == KindBadge {
				badges++
			}
		}
	}
	if badges != len(tables.Plan.Roadmap) {
		t.Errorf("badges = %d, want %d", badges, len(tables.Plan.Roadmap))
	}
	if seps != len(tables.Plan.Roadmap)-1 {
		t.Errorf("separators = %d, want %d", seps, len(tables.Plan.Roadmap)-1)
	}
	tl, ok := findChart(p, ChartTimeline)
	if !ok || len(tl.Tasks) != 6 {
		t.Fatal("timeline should have six tasks")
	}
	if tl.Tasks[0].Color != "#10B981" {
		t.Errorf("completed color = %s", tl.Tasks[0].Color)
	}
}

func TestRenderInvalidFocusFallsBack(t *testing.T) {
	p := Render(Focus(42), dataset.Generate())
	if p.Focus != MarketOverview {
		t.Errorf("focus = %s, want Market Overview", p.Focus)
	}
}

func TestParseFocus(t *testing.T) {
	tests := []struct {
		in   string
		want Focus
	}{
		{"Market Overview", MarketOverview},
		{"competitive-landscape", CompetitiveLandscape},
		{"TargetSegmentation", TargetSegmentation},
		{"positioning_strategy", PositioningStrategy},
		{"  PERFORMANCE TRACKER ", PerformanceTracker},
		{"Go-to-Market Plan", GoToMarketPlan},
		{"gotomarketplan", GoToMarketPlan},
	}
	for _, tt := range tests {
		got, err := ParseFocus(tt.in)
		if err != nil {
			t.Errorf("ParseFocus(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFocus(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "overview", "market"} {
		if _, err := ParseFocus(bad); !errors.Is(err, ErrUnknownFocus) {
			t.Errorf("ParseFocus(%q) err = %v, want ErrUnknownFocus", bad, err)
		}
	}
}

func TestFocusSlugRoundTrip(t *testing.T) {
	for _, f := range All() {
		got, err := ParseFocus(f.Slug())
		if err != nil || got != f {
			t.Errorf("slug %q parsed to %v, %v", f.Slug(), got, err)
		}
		text, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Focus
		if err := back.UnmarshalText(text); err != nil || back != f {
			t.Errorf("text %q round trip = %v, %v", text, back, err)
		}
	}
	if GoToMarketPlan.Slug() != "go-to-market-plan" {
		t.Errorf("slug = %q", GoToMarketPlan.Slug())
	}
}

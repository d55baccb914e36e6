package view

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/stoki/internal/cli"
	"github.com/theirongolddev/stoki/internal/dataset"
	"github.com/theirongolddev/stoki/internal/model"
	"github.com/theirongolddev/stoki/internal/pipeline"
)

// Chart colors.
const (
	colorNavy      = "#1E3A8A"
	colorBlue      = "#3B82F6"
	colorSky       = "#60A5FA"
	colorPale      = "#93C5FD"
	colorDeepBlue  = "#1D4ED8"
	colorGreen     = "#10B981"
	colorAmber     = "#F59E0B"
	colorRed       = "#EF4444"
	colorGray      = "#9CA3AF"
	colorSlate     = "#6B7280"
	colorCheckmark = "#16A34A"
)

var funnelColors = []string{colorNavy, colorBlue, colorSky, colorPale}

// companyColors is assigned to companies in table order.
var companyColors = []string{"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A", "#19D3F3"}

func companyColor(i int) string {
	return companyColors[i%len(companyColors)]
}

// priorityColor shades pain points from light (top priority) to dark.
func priorityColor(priority int) string {
	switch {
	case priority <= 1:
		return colorPale
	case priority == 2:
		return colorBlue
	default:
		return colorNavy
	}
}

// growthColor grades YoY growth from red through amber to green.
func growthColor(growth float64) string {
	switch {
	case growth >= 60:
		return colorGreen
	case growth >= 30:
		return colorAmber
	default:
		return colorRed
	}
}

func marketOverview(t dataset.Tables) []Node {
	nodes := []Node{header("Market Opportunity Analysis")}

	byLabel := make(map[string]model.MarketFundamental, len(t.Market))
	for _, m := range t.Market {
		byLabel[m.Label] = m
	}
	sam := byLabel["SAM"]
	current := byLabel["Current"]
	nodes = append(nodes, metrics(
		Metric{Label: "Total Addressable Market", Value: cli.FormatNumber(byLabel["TAM"].Value), Delta: byLabel["TAM"].Unit},
		Metric{Label: "Serviceable Market", Value: cli.FormatNumber(sam.Value), Delta: "Metro SMMEs"},
		Metric{Label: "Obtainable Market", Value: cli.FormatNumber(byLabel["SOM"].Value), Delta: "Year 1-3 Target"},
		Metric{
			Label: "Current Digital Adoption",
			Value: cli.FormatNumber(current.Value),
			Delta: cli.FormatPercent(pipeline.PercentOf(float64(current.Value), float64(sam.Value))) + " of SAM",
		},
	))

	nodes = append(nodes, subheader("Market Funnel Analysis"))
	funnel := Series{Name: "Market"}
	for i, st := range pipeline.Funnel(t.Market) {
		funnel.Points = append(funnel.Points, Point{
			Label: fmt.Sprintf("%s (%s)", st.Label, cli.FormatNumber(st.Value)),
			Y:     float64(st.Value),
			Color: funnelColors[i%len(funnelColors)],
			Text:  fmt.Sprintf("%s (%s)", cli.FormatNumber(st.Value), cli.FormatWholePercent(st.PercentOfInitial)),
		})
	}
	nodes = append(nodes, chart(Chart{
		Kind:   ChartFunnel,
		Title:  "Market Segmentation Funnel",
		Series: []Series{funnel},
	}))

	nodes = append(nodes, subheader("Target Customer Pain Points"))
	pains := Series{Name: "Prevalence"}
	var notes []Annotation
	for _, p := range t.PainPoints {
		pains.Points = append(pains.Points, Point{
			Label: p.Description,
			Y:     p.Prevalence,
			Color: priorityColor(p.Priority),
			Text:  cli.FormatValue(p.Prevalence) + "%",
			Group: "Priority " + strconv.Itoa(p.Priority),
		})
		if p.Addressed {
			notes = append(notes, Annotation{
				Category: p.Description,
				Y:        p.Prevalence + 2,
				Text:     "✓ Addressed by Stoki",
				Color:    colorCheckmark,
			})
		}
	}
	nodes = append(nodes, chart(Chart{
		Kind:        ChartBar,
		Title:       "Top SMME Financial Pain Points",
		XTitle:      "Pain Point",
		YTitle:      "Prevalence (%)",
		Series:      []Series{pains},
		Annotations: notes,
		YRange:      &Range{Min: 0, Max: 50},
	}))
	return nodes
}

func competitiveLandscape(t dataset.Tables) []Node {
	nodes := []Node{header("Competitive Intelligence"), subheader("Financial Comparison")}

	share := Series{Name: "Market Share"}
	for _, c := range t.Rivals() {
		share.Points = append(share.Points, Point{
			Label: c.Name,
			Y:     c.MarketShare,
			Color: growthColor(c.YoYGrowth),
			Text:  cli.FormatPercent(c.MarketShare),
			Group: cli.FormatPercent(c.YoYGrowth) + " YoY",
		})
	}
	shareChart := Chart{
		Kind:   ChartBar,
		Title:  "Market Share & Growth",
		XTitle: "Company",
		YTitle: "Market Share (%)",
		Series: []Series{share},
	}

	bubbles := Series{Name: "Companies"}
	var refs []RefLine
	for i, c := range t.Competitors {
		arpu, _ := c.ARPUMonthly.Float64()
		cac, _ := c.CAC.Float64()
		bubbles.Points = append(bubbles.Points, Point{
			Label: c.Name,
			X:     arpu,
			Y:     cac,
			Size:  float64(c.Customers),
			Color: companyColor(i),
			Text:  fmt.Sprintf("%s margin, %s mo payback", cli.FormatPercent(c.ProfitMargin), cli.FormatMonths(c.CACPaybackMonths())),
		})
		if c.IsTarget {
			refs = append(refs,
				RefLine{Axis: AxisY, Value: cac, Label: "Stoki Target CAC", Color: colorBlue, Dashed: true},
				RefLine{Axis: AxisX, Value: arpu, Label: "Stoki Target ARPU", Color: colorBlue, Dashed: true},
			)
		}
	}
	scatterChart := Chart{
		Kind:     ChartScatter,
		Title:    "ARPU vs CAC (Bubble size = Customers)",
		XTitle:   "ARPU (R/month)",
		YTitle:   "CAC (R)",
		Series:   []Series{bubbles},
		RefLines: refs,
	}
	nodes = append(nodes, columns([]int{1, 1}, chart(shareChart), chart(scatterChart)))

	nodes = append(nodes, subheader("Unit Economics"), table(unitEconomics(t.Competitors)))

	nodes = append(nodes, subheader("Feature Gap Analysis"), chart(Chart{
		Kind:    ChartHeatmap,
		Title:   "Competitive Feature Matrix",
		XTitle:  "Company",
		YTitle:  "Feature",
		Heatmap: featureHeatmap(t.Features),
	}))

	cov := pipeline.SummarizeCoverage(t.Features, dataset.TargetCompany)
	nodes = append(nodes, subheader("Feature Coverage Analysis"), metrics(
		Metric{
			Label: "Stoki Feature Coverage",
			Value: cli.FormatWholePercent(cov.Target.Percent),
			Delta: fmt.Sprintf("%d/%d features", cov.Target.Supported, cov.Target.Total),
		},
		Metric{
			Label: "Competitor Average",
			Value: cli.FormatWholePercent(cov.AveragePercent),
			Delta: fmt.Sprintf("%s/%d features", strconv.FormatFloat(cov.AverageFeatures, 'f', 1, 64), cov.Target.Total),
		},
		Metric{
			Label: "Stoki Advantage",
			Value: cli.FormatWholePercent(cov.AdvantagePercent),
			Delta: fmt.Sprintf("%+.1f features", cov.AdvantageCount),
		},
	))
	return nodes
}

func unitEconomics(competitors []model.Competitor) Table {
	tbl := Table{Headers: []string{
		"Company", "Revenue", "Customers", "ARPU", "CAC", "Payback (mo)", "Margin", "Funding", "Valuation",
	}}
	for _, c := range competitors {
		tbl.Rows = append(tbl.Rows, []string{
			c.Name,
			cli.FormatRandMillions(c.Revenue),
			cli.FormatNumber(int64(c.Customers)),
			cli.FormatRandDecimal(c.ARPUMonthly),
			cli.FormatRandDecimal(c.CAC),
			cli.FormatMonths(c.CACPaybackMonths()),
			cli.FormatPercent(c.ProfitMargin),
			cli.FormatRandMillions(c.FundingRaised),
			cli.FormatRandMillions(c.Valuation),
		})
	}
	return tbl
}

// featureHeatmap copies the 0/1 availability flags straight from the matrix.
func featureHeatmap(m model.FeatureMatrix) *Heatmap {
	h := &Heatmap{
		Columns:   append([]string(nil), m.Companies...),
		Highlight: dataset.TargetCompany,
	}
	for _, r := range m.Rows {
		h.Rows = append(h.Rows, r.Feature)
		cells := make([]int, len(m.Companies))
		for i := range cells {
			if i < len(r.Support) && r.Support[i] {
				cells[i] = 1
			}
		}
		h.Cells = append(h.Cells, cells)
	}
	return h
}

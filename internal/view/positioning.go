package view

import (
	"fmt"

	"github.com/theirongolddev/stoki/internal/cli"
	"github.com/theirongolddev/stoki/internal/dataset"
)

var segmentColors = []string{colorSky, colorBlue, colorDeepBlue}

const idealCustomerProfile = `### Ideal Customer Profile

- **Size:** 11-50 employees
- **Revenue:** R5M - R50M annually
- **Industry:** Professional services, retail, hospitality
- **Pain Points:** Late payments, time-consuming admin, cash flow uncertainty
- **Tech Savviness:** Digitally literate but time-poor
- **Current Solution:** Using basic tools or dissatisfied with current provider
`

var valuePropositions = []string{
	"### Beautiful UX\n\n- Intuitive interface\n- Mobile-first design\n- Easy onboarding\n",
	"### Cashflow Automation\n\n- AI-powered forecasting\n- Automated payment reminders\n- Real-time insights\n",
	"### All-in-One Solution\n\n- Invoicing + expenses\n- VAT ready\n- Bank integrations\n",
}

// Positioning map geometry.
const (
	quadrantSplit  = 5.0
	bestValueLabel = "✓ Best Value"
	bestValueY     = 400.0
)

func targetSegmentation(t dataset.Tables) []Node {
	nodes := []Node{header("Target Market Segmentation")}

	share := Series{Name: "Market Size"}
	adoption := Series{Name: "Digital Adoption", Color: colorGreen}
	arpu := Series{Name: "ARPU Potential", Color: colorAmber}
	cac := Series{Name: "CAC", Color: colorRed}
	for i, s := range t.Segments {
		share.Points = append(share.Points, Point{
			Label: s.Name,
			Y:     s.MarketSize,
			Color: segmentColors[i%len(segmentColors)],
			Text:  cli.FormatValue(s.MarketSize) + "%",
		})
		adoption.Points = append(adoption.Points, Point{Label: s.Name, Y: s.DigitalAdoption, Color: colorGreen})
		arpu.Points = append(arpu.Points, Point{Label: s.Name, Y: float64(s.ARPUPotential), Color: colorAmber})
		cac.Points = append(cac.Points, Point{Label: s.Name, Y: float64(s.CAC), Color: colorRed})
	}

	nodes = append(nodes, grid(2,
		chart(Chart{Kind: ChartPie, Title: "Market Size Distribution", Series: []Series{share}}),
		chart(Chart{Kind: ChartBar, Title: "Digital Adoption Rate", YTitle: "Percentage", Series: []Series{adoption}}),
		chart(Chart{Kind: ChartBar, Title: "ARPU Potential", YTitle: "Rands", Series: []Series{arpu}}),
		chart(Chart{Kind: ChartBar, Title: "CAC by Segment", YTitle: "Rands", Series: []Series{cac}}),
	))

	nodes = append(nodes, subheader("Why Target Small Businesses (11-50 employees)?"))
	if len(t.Segments) > dataset.SweetSpotSegment {
		s := t.Segments[dataset.SweetSpotSegment]
		nodes = append(nodes, metrics(
			Metric{Label: "Market Size", Value: cli.FormatValue(s.MarketSize) + "%", Delta: "of total SMMEs"},
			Metric{Label: "Digital Adoption", Value: cli.FormatValue(s.DigitalAdoption) + "%", Delta: "ready to upgrade"},
			Metric{Label: "ARPU Potential", Value: cli.FormatRand(int64(s.ARPUPotential)), Delta: "/month"},
			Metric{Label: "Growth Rate", Value: cli.FormatValue(s.GrowthRate) + "%", Delta: "YoY"},
		))
	}

	nodes = append(nodes, markdown(idealCustomerProfile))
	return nodes
}

func positioningStrategy(t dataset.Tables) []Node {
	nodes := []Node{header("Strategic Positioning"), subheader("Competitive Positioning Map")}

	points := Series{Name: "Companies"}
	for i, p := range t.Positioning {
		points.Points = append(points.Points, Point{
			Label: p.Company,
			X:     p.FeatureScore,
			Y:     p.PriceIndex,
			Size:  float64(p.Customers),
			Color: companyColor(i),
			Group: p.Quadrant,
		})
	}
	nodes = append(nodes, chart(Chart{
		Kind:   ChartScatter,
		Title:  "Strategic Positioning: Feature Score vs Price Index",
		XTitle: "Feature Score & Quality →",
		YTitle: "Price Index →",
		Series: []Series{points},
		RefLines: []RefLine{
			{Axis: AxisY, Value: quadrantSplit, Color: colorGray, Dashed: true},
			{Axis: AxisX, Value: quadrantSplit, Color: colorGray, Dashed: true},
		},
		Annotations: []Annotation{
			{X: 3, Y: 8, Text: "Premium-Complex"},
			{X: 3, Y: 2, Text: "Budget-Basic"},
			{X: 8, Y: 8, Text: "Premium-Advanced"},
			{X: 8, Y: 2, Text: "Value-Advanced"},
		},
		Shapes: []Shape{{Kind: "circle", X0: 8, Y0: 4.5, X1: 9, Y1: 5.5, Color: colorBlue}},
	}))

	nodes = append(nodes, subheader("Stoki's Unique Value Proposition"))
	cards := make([]Node, len(valuePropositions))
	weights := make([]int, len(valuePropositions))
	for i, vp := range valuePropositions {
		cards[i] = markdown(vp)
		weights[i] = 1
	}
	nodes = append(nodes, columns(weights, cards...))

	nodes = append(nodes, subheader("Pricing Strategy"))
	tiers := Series{Name: "Price"}
	var notes []Annotation
	for _, p := range t.Plan.Pricing {
		tiers.Points = append(tiers.Points, Point{
			Label: p.Tier,
			Y:     float64(p.Price),
			Color: p.Color,
			Text:  fmt.Sprintf("R%d/month", p.Price),
			Group: p.Features,
		})
		if p.Featured {
			notes = append(notes, Annotation{Category: p.Tier, Y: bestValueY, Text: bestValueLabel, Color: colorCheckmark})
		}
	}
	nodes = append(nodes, chart(Chart{
		Kind:        ChartBar,
		Title:       "Competitive Pricing Positioning",
		XTitle:      "Tier",
		YTitle:      "Monthly Price (R)",
		Series:      []Series{tiers},
		Annotations: notes,
	}))
	return nodes
}

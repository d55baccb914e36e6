package view

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/stoki/internal/cli"
	"github.com/theirongolddev/stoki/internal/dataset"
)

// Page chrome shown on every focus.
const (
	Title        = "Stoki Market Entry Strategy"
	Subtitle     = "Medium-Level Analysis for SA SMME FinTech Market Entry"
	SidebarTitle = "Stoki Strategy Console"
)

// Render builds the page for focus from t. It reads t without modifying it
// and returns the same tree for the same inputs. An invalid focus renders
// the market overview.
func Render(focus Focus, t dataset.Tables) Page {
	if !focus.Valid() {
		focus = MarketOverview
	}

	var body []Node
	switch focus {
	case MarketOverview:
		body = marketOverview(t)
	case CompetitiveLandscape:
		body = competitiveLandscape(t)
	case TargetSegmentation:
		body = targetSegmentation(t)
	case PositioningStrategy:
		body = positioningStrategy(t)
	case PerformanceTracker:
		body = performanceTracker(t)
	case GoToMarketPlan:
		body = goToMarketPlan(t)
	}

	return Page{
		Focus:    focus,
		Title:    Title,
		Subtitle: Subtitle,
		Sidebar:  Sidebar(t),
		Body:     body,
		Footer:   Footer(t),
	}
}

// Sidebar is the insight panel and quick stats shown next to every focus.
func Sidebar(t dataset.Tables) []Node {
	nodes := []Node{subheader("Key Insights")}
	for _, in := range t.Plan.Insights {
		nodes = append(nodes, callout(in.Tone, in.Title, in.Text))
	}

	nodes = append(nodes, separator(), subheader("Quick Stats"))

	for _, m := range t.Market {
		if m.Label == "SOM" {
			nodes = append(nodes, metrics(Metric{
				Label: "Target SOM",
				Value: cli.FormatNumber(m.Value) + " " + m.Unit,
			}))
		}
	}
	if target, ok := t.Target(); ok {
		nodes = append(nodes,
			metrics(Metric{Label: "Projected ARPU", Value: cli.FormatRandDecimal(target.ARPUMonthly) + "/month"}),
			metrics(Metric{Label: "Target CAC", Value: cli.FormatRandDecimal(target.CAC)}),
		)
	}
	if len(t.Results) > dataset.ResultSignups {
		r := t.Results[dataset.ResultSignups]
		nodes = append(nodes, metrics(Metric{
			Label: "Q1 Signups",
			Value: cli.FormatValue(r.Current),
			Delta: cli.FormatValue(r.Current - r.Target),
		}))
	}
	return nodes
}

// Footer repeats the headline strategic targets.
func Footer(t dataset.Tables) []Node {
	s := t.Plan.Summary
	var b strings.Builder
	b.WriteString("### Strategic Summary\n\n")
	fmt.Fprintf(&b, "**Target:** %s • **Price:** %s • **Differentiator:** %s\n\n",
		s.Target, s.Price, s.Differentiator)
	fmt.Fprintf(&b, "**Goal:** %s • **MRR Target:** %s • **Channels:** %s\n\n",
		s.Goal, s.MRRTarget, s.Channels)
	fmt.Fprintf(&b, "_Stoki Market Entry Dashboard • Last Updated: %s_\n", s.Updated)

	return []Node{separator(), markdown(b.String())}
}

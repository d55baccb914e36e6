package cmd

import (
	"fmt"

	"github.com/theirongolddev/stoki/internal/cli"
	"github.com/theirongolddev/stoki/internal/pipeline"
	"github.com/theirongolddev/stoki/internal/view"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the strategic summary and quick stats",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

const (
	barWidth      = 30
	progressWidth = 24
)

func runSummary(_ *cobra.Command, _ []string) error {
	t := loadTables()
	s := t.Plan.Summary

	fmt.Println()
	fmt.Println(cli.RenderTitle(view.Title))
	fmt.Println()

	rows := [][]string{
		{"Target", s.Target},
		{"Price", s.Price},
		{"Differentiator", s.Differentiator},
		{"Goal", s.Goal},
		{"MRR Target", s.MRRTarget},
		{"Channels", s.Channels},
		{"---"},
	}
	view.Walk(view.Sidebar(t), func(n view.Node) {
		if n.Kind != view.KindMetrics {
			return
		}
		for _, m := range n.Metrics {
			value := m.Value
			if m.Delta != "" {
				value += fmt.Sprintf("  (%s)", m.Delta)
			}
			rows = append(rows, []string{m.Label, value})
		}
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Strategic Summary",
		Headers: []string{"Item", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	fmt.Println("  Launch progress")
	for _, p := range pipeline.MeasureAll(t.Results) {
		fmt.Printf("  %-24s %s\n", p.Metric.Metric, cli.RenderProgressBar(p.Ratio, progressWidth, view.ProgressCaption(p)))
	}
	fmt.Println()

	fmt.Println("  Market share (Q2 2024)")
	rivals := t.Rivals()
	peak, labelW := 0.0, 0
	for _, c := range rivals {
		peak = max(peak, c.MarketShare)
		labelW = max(labelW, len(c.Name))
	}
	for _, c := range rivals {
		fmt.Println(cli.RenderHorizontalBar(c.Name, labelW, c.MarketShare, peak, barWidth,
			fmt.Sprintf("%s  %s customers", cli.FormatPercent(c.MarketShare), cli.FormatCompact(int64(c.Customers)))))
	}
	fmt.Println()

	signups := make([]float64, len(t.Plan.Growth))
	for i, q := range t.Plan.Growth {
		signups[i] = float64(q.Signups)
	}
	if len(signups) > 0 {
		first, last := t.Plan.Growth[0], t.Plan.Growth[len(t.Plan.Growth)-1]
		fmt.Printf("  Projected signups  %s  %s → %s (%s → %s)\n\n",
			cli.RenderSparkline(signups),
			cli.FormatNumber(int64(first.Signups)), cli.FormatNumber(int64(last.Signups)),
			first.Quarter, last.Quarter)
	}

	fmt.Printf("  %s\n", s.Updated)
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/theirongolddev/stoki/internal/cli"
	"github.com/theirongolddev/stoki/internal/dataset"
	"github.com/theirongolddev/stoki/internal/export"

	"github.com/spf13/cobra"
)

var flagTablesFormat string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Dump the dashboard data tables",
	RunE:  runTables,
}

func init() {
	tablesCmd.Flags().StringVar(&flagTablesFormat, "format", "table", "Output format: table, json or yaml")
	rootCmd.AddCommand(tablesCmd)
}

func runTables(_ *cobra.Command, _ []string) error {
	t := loadTables()

	if flagTablesFormat == "table" {
		for _, tbl := range renderTables(t) {
			fmt.Print(cli.RenderTable(tbl))
			fmt.Println()
		}
		return nil
	}

	f, err := export.ParseFormat(flagTablesFormat)
	if err != nil {
		return err
	}
	return export.WriteTables(os.Stdout, t, f)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}

// renderTables lays every table out for the bordered CLI renderer.
func renderTables(t dataset.Tables) []cli.Table {
	var out []cli.Table

	market := cli.Table{Title: "Market Fundamentals", Headers: []string{"Metric", "Label", "Value", "Unit"}}
	for _, m := range t.Market {
		market.Rows = append(market.Rows, []string{m.Metric, m.Label, cli.FormatNumber(m.Value), m.Unit})
	}
	out = append(out, market)

	comp := cli.Table{
		Title:   "Competitors (Q2 2024)",
		Headers: []string{"Company", "Revenue", "Share", "YoY", "Customers", "ARPU", "CAC", "Payback (mo)", "Margin"},
	}
	for _, c := range t.Competitors {
		comp.Rows = append(comp.Rows, []string{
			c.Name,
			cli.FormatRandMillions(c.Revenue),
			cli.FormatPercent(c.MarketShare),
			cli.FormatPercent(c.YoYGrowth),
			cli.FormatNumber(int64(c.Customers)),
			cli.FormatRandDecimal(c.ARPUMonthly),
			cli.FormatRandDecimal(c.CAC),
			cli.FormatMonths(c.CACPaybackMonths()),
			cli.FormatPercent(c.ProfitMargin),
		})
	}
	out = append(out, comp)

	feat := cli.Table{Title: "Feature Matrix", Headers: append([]string{"Feature"}, t.Features.Companies...)}
	for _, r := range t.Features.Rows {
		row := []string{r.Feature}
		for _, s := range r.Support {
			row = append(row, yesNo(s))
		}
		feat.Rows = append(feat.Rows, row)
	}
	out = append(out, feat)

	pos := cli.Table{Title: "Positioning", Headers: []string{"Company", "Feature Score", "Price Index", "Customers", "Quadrant"}}
	for _, p := range t.Positioning {
		pos.Rows = append(pos.Rows, []string{p.Company, fmtFloat(p.FeatureScore), fmtFloat(p.PriceIndex), cli.FormatNumber(int64(p.Customers)), p.Quadrant})
	}
	out = append(out, pos)

	seg := cli.Table{Title: "Segments", Headers: []string{"Segment", "Market %", "Digital %", "ARPU", "CAC", "Growth %"}}
	for _, s := range t.Segments {
		seg.Rows = append(seg.Rows, []string{s.Name, fmtFloat(s.MarketSize), fmtFloat(s.DigitalAdoption),
			cli.FormatRand(int64(s.ARPUPotential)), cli.FormatRand(int64(s.CAC)), fmtFloat(s.GrowthRate)})
	}
	out = append(out, seg)

	res := cli.Table{Title: "Results", Headers: []string{"Metric", "Current", "Target", "Unit"}}
	for _, r := range t.Results {
		res.Rows = append(res.Rows, []string{r.Metric, cli.FormatValue(r.Current), cli.FormatValue(r.Target), r.Unit})
	}
	out = append(out, res)

	pain := cli.Table{Title: "Pain Points", Headers: []string{"Pain Point", "Prevalence %", "Addressed", "Priority"}}
	for _, p := range t.PainPoints {
		pain.Rows = append(pain.Rows, []string{p.Description, fmtFloat(p.Prevalence), yesNo(p.Addressed), strconv.Itoa(p.Priority)})
	}
	out = append(out, pain)

	return out
}

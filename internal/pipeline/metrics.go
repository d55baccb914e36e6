// Package pipeline derives the display metrics shown on the dashboard from
// the static tables. Nothing here is cached: every call recomputes from the
// base fields it is handed.
package pipeline

import (
	"math"

	"github.com/theirongolddev/stoki/internal/model"

	"gonum.org/v1/gonum/stat"
)

// SatisfactionBaseline is the score the satisfaction tile compares against.
const SatisfactionBaseline = 4.0

// FeatureCoverage counts the features a company ships. The second return
// is false when the company has no column in the matrix.
func FeatureCoverage(m model.FeatureMatrix, company string) (model.Coverage, bool) {
	col, ok := m.Column(company)
	if !ok {
		return model.Coverage{Company: company}, false
	}

	cov := model.Coverage{Company: company, Total: len(col)}
	for _, has := range col {
		if has {
			cov.Supported++
		}
	}
	if cov.Total > 0 {
		cov.Percent = float64(cov.Supported) / float64(cov.Total) * 100
	}
	return cov, true
}

// SummarizeCoverage compares target's coverage with the mean coverage of
// every other company in the matrix.
func SummarizeCoverage(m model.FeatureMatrix, target string) model.CoverageSummary {
	var s model.CoverageSummary
	s.Target, _ = FeatureCoverage(m, target)

	var percents, counts []float64
	for _, company := range m.Companies {
		if company == target {
			continue
		}
		cov, _ := FeatureCoverage(m, company)
		s.Competitors = append(s.Competitors, cov)
		percents = append(percents, cov.Percent)
		counts = append(counts, cov.FeatureCount())
	}

	if len(percents) > 0 {
		s.AveragePercent = stat.Mean(percents, nil)
		s.AverageFeatures = stat.Mean(counts, nil)
	}
	s.AdvantagePercent = s.Target.Percent - s.AveragePercent
	s.AdvantageCount = s.Target.FeatureCount() - s.AverageFeatures
	return s
}

// MeasureProgress compares a metric against its target. A non-positive
// target yields zero progress. Percent saturates at the int32 range.
func MeasureProgress(r model.ResultMetric) model.Progress {
	p := model.Progress{Metric: r}
	if r.Target <= 0 {
		return p
	}

	ratio := r.Current / r.Target
	pct := math.Round(ratio * 100)
	p.Percent = int(math.Max(math.MinInt32, math.Min(math.MaxInt32, pct)))
	p.Ratio = math.Max(0, math.Min(1, ratio))
	return p
}

// MeasureAll runs MeasureProgress over every row, preserving order.
func MeasureAll(rows []model.ResultMetric) []model.Progress {
	out := make([]model.Progress, len(rows))
	for i, r := range rows {
		out[i] = MeasureProgress(r)
	}
	return out
}

// PercentOf returns part as a percentage of whole, or 0 for an empty whole.
func PercentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

// PercentBelowTarget returns how far current sits under target, in percent
// of target. Overshooting the target gives a negative value.
func PercentBelowTarget(r model.ResultMetric) float64 {
	return PercentOf(r.Target-r.Current, r.Target)
}

// SatisfactionLift returns the change of score over SatisfactionBaseline in
// percent.
func SatisfactionLift(score float64) float64 {
	return PercentOf(score-SatisfactionBaseline, SatisfactionBaseline)
}

// FunnelStage is one market-sizing level with its share of the first level.
type FunnelStage struct {
	Label            string
	Value            int64
	PercentOfInitial float64
}

// Funnel turns the market fundamentals into funnel stages in table order.
func Funnel(market []model.MarketFundamental) []FunnelStage {
	if len(market) == 0 {
		return nil
	}
	initial := float64(market[0].Value)
	stages := make([]FunnelStage, len(market))
	for i, m := range market {
		stages[i] = FunnelStage{
			Label:            m.Label,
			Value:            m.Value,
			PercentOfInitial: PercentOf(float64(m.Value), initial),
		}
	}
	return stages
}

// NonIncreasing reports whether every stage is no larger than the one
// before it.
func NonIncreasing(stages []FunnelStage) bool {
	for i := 1; i < len(stages); i++ {
		if stages[i].Value > stages[i-1].Value {
			return false
		}
	}
	return true
}

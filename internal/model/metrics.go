package model

// Coverage is the share of features a company ships.
type Coverage struct {
	Company   string
	Supported int
	Total     int
	Percent   float64 // 0-100
}

// FeatureCount returns the number of supported features as a float so that
// averages across companies can be shown with one decimal.
func (c Coverage) FeatureCount() float64 {
	return float64(c.Supported)
}

// CoverageSummary compares the target's coverage to the competitor mean.
type CoverageSummary struct {
	Target           Coverage
	Competitors      []Coverage
	AveragePercent   float64 // mean of competitor percents
	AverageFeatures  float64 // mean supported feature count
	AdvantagePercent float64 // Target.Percent - AveragePercent
	AdvantageCount   float64 // Target features - AverageFeatures
}

// Progress is a ResultMetric measured against its target.
type Progress struct {
	Metric  ResultMetric
	Ratio   float64 // current/target clamped to [0,1]
	Percent int     // round(100 * current/target), unclamped
}

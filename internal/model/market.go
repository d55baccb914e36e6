// Package model defines domain types for the stoki market-entry dashboard.
package model

import "github.com/shopspring/decimal"

// MarketFundamental is one level of the TAM/SAM/SOM sizing funnel.
type MarketFundamental struct {
	Metric      string `json:"metric" yaml:"metric"`
	Label       string `json:"label" yaml:"label"` // TAM, SAM, SOM, Current
	Value       int64  `json:"value" yaml:"value"`
	Unit        string `json:"unit" yaml:"unit"`
	Description string `json:"description" yaml:"description"`
}

// Competitor holds Q2 2024 financials for one company in the market.
// Monetary amounts are Rand; revenue, funding and valuation are in millions.
type Competitor struct {
	Name          string          `json:"name" yaml:"name"`
	IsTarget      bool            `json:"is_target" yaml:"is_target"`
	Revenue       decimal.Decimal `json:"revenue_r_m" yaml:"revenue_r_m"`
	MarketShare   float64         `json:"market_share" yaml:"market_share"`
	YoYGrowth     float64         `json:"yoy_growth" yaml:"yoy_growth"`
	Customers     int             `json:"customers" yaml:"customers"`
	ARPUMonthly   decimal.Decimal `json:"arpu_monthly" yaml:"arpu_monthly"`
	CAC           decimal.Decimal `json:"cac" yaml:"cac"`
	FundingRaised decimal.Decimal `json:"funding_raised_r_m" yaml:"funding_raised_r_m"`
	Valuation     decimal.Decimal `json:"valuation_r_m" yaml:"valuation_r_m"`
	ProfitMargin  float64         `json:"profit_margin" yaml:"profit_margin"`
}

// CACPaybackMonths returns CAC / monthly ARPU, unrounded.
// A zero ARPU yields zero rather than an infinite payback.
func (c Competitor) CACPaybackMonths() decimal.Decimal {
	if c.ARPUMonthly.IsZero() {
		return decimal.Zero
	}
	return c.CAC.Div(c.ARPUMonthly)
}

// FeatureMatrix records which company ships which feature.
// Support[i] in each row is aligned with Companies[i].
type FeatureMatrix struct {
	Companies []string     `json:"companies" yaml:"companies"`
	Rows      []FeatureRow `json:"rows" yaml:"rows"`
}

// FeatureRow is one feature and its per-company availability.
type FeatureRow struct {
	Feature string `json:"feature" yaml:"feature"`
	Support []bool `json:"support" yaml:"support"`
}

// CompanyIndex returns the column index of company, or -1.
func (m FeatureMatrix) CompanyIndex(company string) int {
	for i, c := range m.Companies {
		if c == company {
			return i
		}
	}
	return -1
}

// Column returns the availability flags of one company, top to bottom.
func (m FeatureMatrix) Column(company string) ([]bool, bool) {
	idx := m.CompanyIndex(company)
	if idx < 0 {
		return nil, false
	}
	col := make([]bool, len(m.Rows))
	for i, r := range m.Rows {
		if idx < len(r.Support) {
			col[i] = r.Support[idx]
		}
	}
	return col, true
}

// PositioningPoint places a company on the feature/price map.
type PositioningPoint struct {
	Company      string  `json:"company" yaml:"company"`
	FeatureScore float64 `json:"feature_score" yaml:"feature_score"`
	PriceIndex   float64 `json:"price_index" yaml:"price_index"`
	Customers    int     `json:"customers" yaml:"customers"`
	Quadrant     string  `json:"quadrant" yaml:"quadrant"`
}

// Segment describes one SMME size band.
type Segment struct {
	Name            string  `json:"name" yaml:"name"`
	MarketSize      float64 `json:"market_size" yaml:"market_size"`
	DigitalAdoption float64 `json:"digital_adoption" yaml:"digital_adoption"`
	ARPUPotential   int     `json:"arpu_potential" yaml:"arpu_potential"`
	CAC             int     `json:"cac" yaml:"cac"`
	GrowthRate      float64 `json:"growth_rate" yaml:"growth_rate"`
}

// ResultMetric is a tracked launch KPI with its target.
type ResultMetric struct {
	Metric  string  `json:"metric" yaml:"metric"`
	Current float64 `json:"current" yaml:"current"`
	Target  float64 `json:"target" yaml:"target"`
	Unit    string  `json:"unit" yaml:"unit"`
}

// PainPoint is a financial pain reported by SMMEs.
type PainPoint struct {
	Description string  `json:"description" yaml:"description"`
	Prevalence  float64 `json:"prevalence" yaml:"prevalence"`
	Addressed   bool    `json:"addressed" yaml:"addressed"`
	Priority    int     `json:"priority" yaml:"priority"`
}

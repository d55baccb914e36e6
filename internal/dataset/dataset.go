// Package dataset builds the static tables behind the stoki dashboard.
package dataset

import (
	"time"

	"github.com/theirongolddev/stoki/internal/model"

	"github.com/shopspring/decimal"
)

// Fixed table sizes.
const (
	MarketRows      = 4
	CompetitorRows  = 6
	FeatureRows     = 7
	PositioningRows = 6
	SegmentRows     = 3
	ResultRows      = 6
	PainPointRows   = 4
)

// TargetCompany is the product's column name in the feature matrix.
const TargetCompany = "Stoki"

// SweetSpotSegment is the index of the segment the strategy targets.
const SweetSpotSegment = 1

// Indexes into Tables.Results used by the performance tiles.
const (
	ResultSignups = iota
	ResultMRR
	ResultCAC
	ResultPayback
	ResultSatisfaction
	ResultFeatureProgress
)

// Tables is everything the dashboard renders from.
type Tables struct {
	Market      []model.MarketFundamental `json:"market" yaml:"market"`
	Competitors []model.Competitor        `json:"competitors" yaml:"competitors"`
	Features    model.FeatureMatrix       `json:"features" yaml:"features"`
	Positioning []model.PositioningPoint  `json:"positioning" yaml:"positioning"`
	Segments    []model.Segment           `json:"segments" yaml:"segments"`
	Results     []model.ResultMetric      `json:"results" yaml:"results"`
	PainPoints  []model.PainPoint         `json:"pain_points" yaml:"pain_points"`
	Plan        model.Plan                `json:"plan" yaml:"plan"`
}

// Target returns the row of the product itself in Competitors.
func (t Tables) Target() (model.Competitor, bool) {
	for _, c := range t.Competitors {
		if c.IsTarget {
			return c, true
		}
	}
	return model.Competitor{}, false
}

// Rivals returns every competitor except the product itself.
func (t Tables) Rivals() []model.Competitor {
	out := make([]model.Competitor, 0, len(t.Competitors))
	for _, c := range t.Competitors {
		if !c.IsTarget {
			out = append(out, c)
		}
	}
	return out
}

// Generate builds a fresh copy of every table. It never fails and
// returns identical values on every call.
func Generate() Tables {
	return Tables{
		Market:      market(),
		Competitors: competitors(),
		Features:    features(),
		Positioning: positioning(),
		Segments:    segments(),
		Results:     results(),
		PainPoints:  painPoints(),
		Plan:        plan(),
	}
}

func market() []model.MarketFundamental {
	return []model.MarketFundamental{
		{Metric: "Total Addressable Market (TAM)", Label: "TAM", Value: 750000, Unit: "SMMEs", Description: "Total SA SMMEs with internet"},
		{Metric: "Serviceable Addressable Market (SAM)", Label: "SAM", Value: 250000, Unit: "SMMEs", Description: "Metro SMMEs > R1M turnover"},
		{Metric: "Serviceable Obtainable Market (SOM)", Label: "SOM", Value: 40000, Unit: "SMMEs", Description: "Year 1-3 Target (16% of SAM)"},
		{Metric: "Current Market Penetration", Label: "Current", Value: 16000, Unit: "SMMEs", Description: "Currently using digital tools"},
	}
}

func rands(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func competitors() []model.Competitor {
	return []model.Competitor{
		{Name: "Invoicely", Revenue: rands(2.5), MarketShare: 25.8, YoYGrowth: 66.7, Customers: 8200,
			ARPUMonthly: rands(305), CAC: rands(800), FundingRaised: rands(18), Valuation: rands(95), ProfitMargin: 28.1},
		{Name: "ZazuPay", Revenue: rands(1.7), MarketShare: 17.5, YoYGrowth: 54.5, Customers: 6500,
			ARPUMonthly: rands(262), CAC: rands(650), FundingRaised: rands(8.5), Valuation: rands(45), ProfitMargin: 15.0},
		{Name: "SA-Books", Revenue: rands(1.7), MarketShare: 17.5, YoYGrowth: 13.3, Customers: 9000,
			ARPUMonthly: rands(189), CAC: rands(400), FundingRaised: rands(5), Valuation: rands(35), ProfitMargin: 14.7},
		{Name: "QuickStoki", Revenue: rands(1.4), MarketShare: 14.4, YoYGrowth: 40.0, Customers: 12000,
			ARPUMonthly: rands(117), CAC: rands(250), FundingRaised: rands(0), Valuation: rands(25), ProfitMargin: 35.7},
		{Name: "CapitFlow", Revenue: rands(1.4), MarketShare: 14.4, YoYGrowth: 133.3, Customers: 3500,
			ARPUMonthly: rands(400), CAC: rands(1200), FundingRaised: rands(22), Valuation: rands(120), ProfitMargin: 10.7},
		{Name: "Stoki (Target)", IsTarget: true, Revenue: rands(0), Customers: 0,
			ARPUMonthly: rands(349), CAC: rands(550), FundingRaised: rands(0), Valuation: rands(0)},
	}
}

func features() model.FeatureMatrix {
	row := func(name string, flags ...int) model.FeatureRow {
		support := make([]bool, len(flags))
		for i, f := range flags {
			support[i] = f == 1
		}
		return model.FeatureRow{Feature: name, Support: support}
	}
	return model.FeatureMatrix{
		Companies: []string{"Invoicely", "ZazuPay", "SA-Books", "QuickStoki", "CapitFlow", TargetCompany},
		Rows: []model.FeatureRow{
			row("Invoicing", 1, 1, 1, 1, 0, 1),
			row("Expense Tracking", 1, 1, 1, 0, 0, 1),
			row("Cashflow Forecasting", 0, 0, 0, 0, 1, 1),
			row("VAT Submission", 1, 0, 1, 0, 0, 1),
			row("Bank Integration", 1, 0, 1, 0, 1, 1),
			row("Beautiful UX", 0, 1, 0, 0, 1, 1),
			row("Mobile App", 1, 1, 0, 1, 1, 1),
		},
	}
}

func positioning() []model.PositioningPoint {
	return []model.PositioningPoint{
		{Company: "QuickStoki", FeatureScore: 2.1, PriceIndex: 2.0, Customers: 12000, Quadrant: "Budget-Basic"},
		{Company: "ZazuPay", FeatureScore: 6.8, PriceIndex: 4.5, Customers: 6500, Quadrant: "Value-Advanced"},
		{Company: "SA-Books", FeatureScore: 5.5, PriceIndex: 7.9, Customers: 9000, Quadrant: "Premium-Complex"},
		{Company: "CapitFlow", FeatureScore: 8.2, PriceIndex: 8.9, Customers: 3500, Quadrant: "Premium-Complex"},
		{Company: "Invoicely", FeatureScore: 7.0, PriceIndex: 6.0, Customers: 8200, Quadrant: "Premium-Complex"},
		{Company: "Stoki (Target)", FeatureScore: 8.5, PriceIndex: 5.0, Customers: 0, Quadrant: "Value-Advanced"},
	}
}

func segments() []model.Segment {
	return []model.Segment{
		{Name: "Micro (1-10 employees)", MarketSize: 65, DigitalAdoption: 12, ARPUPotential: 150, CAC: 200, GrowthRate: 20},
		{Name: "Small (11-50 employees)", MarketSize: 30, DigitalAdoption: 25, ARPUPotential: 349, CAC: 550, GrowthRate: 35},
		{Name: "Medium (51-200 employees)", MarketSize: 5, DigitalAdoption: 40, ARPUPotential: 699, CAC: 1200, GrowthRate: 15},
	}
}

func results() []model.ResultMetric {
	return []model.ResultMetric{
		{Metric: "Business Signups (Q1)", Current: 217, Target: 200, Unit: "businesses"},
		{Metric: "Monthly Recurring Revenue (MRR)", Current: 75000, Target: 100000, Unit: "R/month"},
		{Metric: "Customer Acquisition Cost (CAC)", Current: 520, Target: 600, Unit: "R"},
		{Metric: "CAC Payback Period", Current: 6.2, Target: 9, Unit: "months"},
		{Metric: "Customer Satisfaction", Current: 4.2, Target: 4.5, Unit: "/5.0"},
		{Metric: "Feature Development Progress", Current: 70, Target: 100, Unit: "%"},
	}
}

func painPoints() []model.PainPoint {
	return []model.PainPoint{
		{Description: "Late payments from clients", Prevalence: 45, Addressed: true, Priority: 1},
		{Description: "Time spent on admin/invoicing/VAT", Prevalence: 30, Addressed: true, Priority: 1},
		{Description: "Understanding cash flow", Prevalence: 15, Addressed: true, Priority: 1},
		{Description: "Paying suppliers", Prevalence: 10, Addressed: false, Priority: 2},
	}
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic("dataset: bad literal date " + s)
	}
	return t
}

func plan() model.Plan {
	return model.Plan{
		Pricing: []model.PricingTier{
			{Tier: "Stoki Basic", Price: 199, Features: "Invoicing + Expenses", Color: "#60A5FA", Own: true},
			{Tier: "Stoki Pro", Price: 349, Features: "Full Suite + Cashflow", Color: "#3B82F6", Own: true, Featured: true},
			{Tier: "Competitor Average", Price: 299, Features: "Limited Suite", Color: "#9CA3AF"},
			{Tier: "Market Leader", Price: 599, Features: "Complex Suite", Color: "#6B7280"},
		},
		Growth: []model.QuarterProjection{
			{Quarter: "Q1 2024", Signups: 217, MRRK: 75, CAC: 520},
			{Quarter: "Q2 2024", Signups: 350, MRRK: 122, CAC: 480},
			{Quarter: "Q3 2024", Signups: 500, MRRK: 175, CAC: 450},
			{Quarter: "Q4 2024", Signups: 700, MRRK: 245, CAC: 420},
		},
		Channels: []model.Channel{
			{Name: "Content Marketing", CAC: 400, Volume: model.VolumeHigh, Priority: 1, Investment: 30},
			{Name: "Accountant Partnerships", CAC: 300, Volume: model.VolumeMedium, Priority: 1, Investment: 30},
			{Name: "LinkedIn Ads", CAC: 850, Volume: model.VolumeLow, Priority: 2, Investment: 20},
			{Name: "SEO", CAC: 200, Volume: model.VolumeHigh, Priority: 1, Investment: 30},
			{Name: "Referral Program", CAC: 150, Volume: model.VolumeMedium, Priority: 2, Investment: 20},
			{Name: "Industry Events", CAC: 1200, Volume: model.VolumeLow, Priority: 3, Investment: 10},
		},
		Roadmap: []model.RoadmapPhase{
			{Phase: "MVP Launch", Features: "Core invoicing + basic reporting", TargetUsers: "Early adopters", Status: model.StatusCompleted},
			{Phase: "Q2 2024", Features: "Expense tracking + VAT calculations", TargetUsers: "Small businesses", Status: model.StatusInProgress},
			{Phase: "Q3 2024", Features: "Cashflow forecasting + bank integrations", TargetUsers: "Growing SMBs", Status: model.StatusPlanned},
			{Phase: "Q4 2024", Features: "Advanced analytics + supplier payments", TargetUsers: "Established businesses", Status: model.StatusFuture},
		},
		Timeline: []model.TimelineTask{
			{Task: "Market Research", Start: day("2024-01-01"), End: day("2024-01-31"), Status: model.StatusCompleted},
			{Task: "MVP Development", Start: day("2024-02-01"), End: day("2024-03-31"), Status: model.StatusCompleted},
			{Task: "Beta Testing", Start: day("2024-04-01"), End: day("2024-06-30"), Status: model.StatusInProgress},
			{Task: "Channel Setup", Start: day("2024-05-01"), End: day("2024-06-30"), Status: model.StatusInProgress},
			{Task: "Full Launch", Start: day("2024-07-01"), End: day("2024-09-30"), Status: model.StatusPlanned},
			{Task: "Scale Operations", Start: day("2024-10-01"), End: day("2025-03-31"), Status: model.StatusPlanned},
		},
		Insights: []model.Insight{
			{Tone: model.ToneSuccess, Title: "Sweet Spot Identified", Text: "Businesses with 11-50 employees"},
			{Tone: model.ToneInfo, Title: "Optimal Pricing", Text: "R349/month"},
			{Tone: model.ToneWarning, Title: "Key Differentiator", Text: "Beautiful UX + Cashflow Automation"},
		},
		Summary: model.StrategicSummary{
			Target:         "Small businesses (11-50 employees) in major metros",
			Price:          "R349/month",
			Differentiator: "Beautiful UX + Cashflow Automation",
			Goal:           "Capture 5% of SOM (2,000 businesses) in Year 1",
			MRRTarget:      "R698,000/month",
			Channels:       "Content marketing + Accountant partnerships",
			Updated:        "August 2024",
		},
	}
}

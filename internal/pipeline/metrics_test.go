package pipeline

import (
	"math"
	"testing"

	"github.com/theirongolddev/stoki/internal/dataset"
	"github.com/theirongolddev/stoki/internal/model"

	"pgregory.net/rapid"
)

func TestFeatureCoverageTarget(t *testing.T) {
	tables := dataset.Generate()
	cov, ok := FeatureCoverage(tables.Features, dataset.TargetCompany)
	if !ok {
		t.Fatal("target column missing")
	}
	if cov.Supported != 7 || cov.Total != 7 {
		t.Fatalf("coverage = %d/%d, want 7/7", cov.Supported, cov.Total)
	}
	if cov.Percent != 100 {
		t.Errorf("percent = %v, want 100", cov.Percent)
	}
}

func TestFeatureCoverageUnknownCompany(t *testing.T) {
	cov, ok := FeatureCoverage(dataset.Generate().Features, "Nobody")
	if ok {
		t.Fatal("expected ok=false")
	}
	if cov.Supported != 0 || cov.Percent != 0 {
		t.Errorf("unexpected coverage %+v", cov)
	}
}

func TestSummarizeCoverage(t *testing.T) {
	s := SummarizeCoverage(dataset.Generate().Features, dataset.TargetCompany)

	if len(s.Competitors) != 5 {
		t.Fatalf("competitors = %d, want 5", len(s.Competitors))
	}
	// 19 supported cells across 5 companies x 7 features.
	wantPct := 19.0 / 35.0 * 100
	if math.Abs(s.AveragePercent-wantPct) > 1e-9 {
		t.Errorf("AveragePercent = %v, want %v", s.AveragePercent, wantPct)
	}
	if math.Abs(s.AverageFeatures-3.8) > 1e-9 {
		t.Errorf("AverageFeatures = %v, want 3.8", s.AverageFeatures)
	}
	if math.Abs(s.AdvantageCount-3.2) > 1e-9 {
		t.Errorf("AdvantageCount = %v, want 3.2", s.AdvantageCount)
	}
	if math.Abs(s.AdvantagePercent-(100-wantPct)) > 1e-9 {
		t.Errorf("AdvantagePercent = %v", s.AdvantagePercent)
	}
}

func TestSummarizeCoverageOnlyTarget(t *testing.T) {
	m := model.FeatureMatrix{
		Companies: []string{"Solo"},
		Rows:      []model.FeatureRow{{Feature: "A", Support: []bool{true}}},
	}
	s := SummarizeCoverage(m, "Solo")
	if s.AveragePercent != 0 || len(s.Competitors) != 0 {
		t.Errorf("unexpected summary %+v", s)
	}
	if s.AdvantagePercent != 100 {
		t.Errorf("AdvantagePercent = %v, want 100", s.AdvantagePercent)
	}
}

func TestMeasureProgress(t *testing.T) {
	tests := []struct {
		name        string
		current     float64
		target      float64
		wantRatio   float64
		wantPercent int
	}{
		{"mrr", 75000, 100000, 0.75, 75},
		{"overshoot clamps", 217, 200, 1, 109},
		{"zero target", 5, 0, 0, 0},
		{"negative target", 5, -1, 0, 0},
		{"negative current", -10, 100, 0, -10},
		{"payback", 6.2, 9, 6.2 / 9, 69},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MeasureProgress(model.ResultMetric{Current: tt.current, Target: tt.target})
			if math.Abs(p.Ratio-tt.wantRatio) > 1e-9 {
				t.Errorf("Ratio = %v, want %v", p.Ratio, tt.wantRatio)
			}
			if p.Percent != tt.wantPercent {
				t.Errorf("Percent = %d, want %d", p.Percent, tt.wantPercent)
			}
		})
	}
}

func TestMeasureProgressProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		current := rapid.Float64Range(-1e6, 1e6).Draw(t, "current")
		target := rapid.Float64Range(-1e6, 1e6).Draw(t, "target")

		p := MeasureProgress(model.ResultMetric{Current: current, Target: target})
		if p.Ratio < 0 || p.Ratio > 1 {
			t.Fatalf("ratio %v outside [0,1]", p.Ratio)
		}
		if target <= 0 && (p.Ratio != 0 || p.Percent != 0) {
			t.Fatalf("non-positive target gave %+v", p)
		}
		if target > 0 && current >= target && p.Ratio != 1 {
			t.Fatalf("current >= target should clamp to 1, got %v", p.Ratio)
		}
	})
}

func TestMeasureProgressPercentMatchesCaption(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		current := rapid.Float64Range(-1e6, 1e6).Draw(t, "current")
		target := rapid.Float64Range(1, 1e6).Draw(t, "target")

		p := MeasureProgress(model.ResultMetric{Current: current, Target: target})
		if want := int(math.Round(current / target * 100)); p.Percent != want {
			t.Fatalf("Percent = %d, want round(100*%v/%v) = %d", p.Percent, current, target, want)
		}
	})
}

func TestMeasureProgressTinyTargetSaturates(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		want    int
	}{
		{"above", 5, math.MaxInt32},
		{"below", -5, math.MinInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MeasureProgress(model.ResultMetric{Current: tt.current, Target: 1e-20})
			if p.Percent != tt.want {
				t.Errorf("Percent = %d, want %d", p.Percent, tt.want)
			}
			if tt.current > 0 && p.Ratio != 1 {
				t.Errorf("Ratio = %v, want 1", p.Ratio)
			}
		})
	}
}

func TestMeasureAllKeepsOrder(t *testing.T) {
	rows := dataset.Generate().Results
	got := MeasureAll(rows)
	if len(got) != len(rows) {
		t.Fatalf("len = %d, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i].Metric.Metric != rows[i].Metric {
			t.Errorf("row %d: %q, want %q", i, got[i].Metric.Metric, rows[i].Metric)
		}
	}
}

func TestPercentBelowTarget(t *testing.T) {
	cac := dataset.Generate().Results[dataset.ResultCAC]
	got := PercentBelowTarget(cac)
	if math.Round(got) != 13 {
		t.Errorf("PercentBelowTarget = %v, want ~13", got)
	}
}

func TestSatisfactionLift(t *testing.T) {
	if got := math.Round(SatisfactionLift(4.2)); got != 5 {
		t.Errorf("SatisfactionLift(4.2) = %v, want 5", got)
	}
}

func TestFunnel(t *testing.T) {
	stages := Funnel(dataset.Generate().Market)
	if len(stages) != dataset.MarketRows {
		t.Fatalf("stages = %d, want %d", len(stages), dataset.MarketRows)
	}
	if !NonIncreasing(stages) {
		t.Error("funnel values increase")
	}
	if stages[0].PercentOfInitial != 100 {
		t.Errorf("first stage = %v%%, want 100", stages[0].PercentOfInitial)
	}
	if got := math.Round(stages[3].PercentOfInitial*10) / 10; got != 2.1 {
		t.Errorf("current stage = %v%%, want 2.1", got)
	}
}

func TestNonIncreasingDetectsGrowth(t *testing.T) {
	stages := []FunnelStage{{Value: 10}, {Value: 20}}
	if NonIncreasing(stages) {
		t.Error("expected increase to be detected")
	}
	if Funnel(nil) != nil {
		t.Error("empty market should give nil funnel")
	}
}

func TestCurrentShareOfSAM(t *testing.T) {
	market := dataset.Generate().Market
	got := PercentOf(float64(market[3].Value), float64(market[1].Value))
	if math.Abs(got-6.4) > 1e-9 {
		t.Errorf("share = %v, want 6.4", got)
	}
}

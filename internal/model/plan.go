package model

import "time"

// Tone classifies a callout or status badge.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
)

// Status is the delivery state of a roadmap phase or timeline task.
type Status string

const (
	StatusCompleted  Status = "Completed"
	StatusInProgress Status = "In Progress"
	StatusPlanned    Status = "Planned"
	StatusFuture     Status = "Future"
)

// Tone maps a status onto the badge tone used to display it.
func (s Status) Tone() Tone {
	switch s {
	case StatusCompleted:
		return ToneSuccess
	case StatusInProgress:
		return ToneWarning
	default:
		return ToneInfo
	}
}

// Plan bundles the go-to-market fixtures shown alongside the core tables.
type Plan struct {
	Pricing  []PricingTier       `json:"pricing" yaml:"pricing"`
	Growth   []QuarterProjection `json:"growth" yaml:"growth"`
	Channels []Channel           `json:"channels" yaml:"channels"`
	Roadmap  []RoadmapPhase      `json:"roadmap" yaml:"roadmap"`
	Timeline []TimelineTask      `json:"timeline" yaml:"timeline"`
	Insights []Insight           `json:"insights" yaml:"insights"`
	Summary  StrategicSummary    `json:"summary" yaml:"summary"`
}

// PricingTier is a monthly price point on the pricing chart.
type PricingTier struct {
	Tier     string `json:"tier" yaml:"tier"`
	Price    int    `json:"price" yaml:"price"`
	Features string `json:"features" yaml:"features"`
	Color    string `json:"color" yaml:"color"`
	Own      bool   `json:"own" yaml:"own"`
	Featured bool   `json:"featured" yaml:"featured"`
}

// QuarterProjection is one quarter of the first-year growth plan.
type QuarterProjection struct {
	Quarter string `json:"quarter" yaml:"quarter"`
	Signups int    `json:"signups" yaml:"signups"`
	MRRK    int    `json:"mrr_r000" yaml:"mrr_r000"` // MRR in R'000
	CAC     int    `json:"cac" yaml:"cac"`
}

// Volume is the expected lead volume from an acquisition channel.
type Volume string

const (
	VolumeHigh   Volume = "High"
	VolumeMedium Volume = "Medium"
	VolumeLow    Volume = "Low"
)

// Channel is an acquisition channel with its cost and priority.
type Channel struct {
	Name       string `json:"name" yaml:"name"`
	CAC        int    `json:"cac" yaml:"cac"`
	Volume     Volume `json:"volume" yaml:"volume"`
	Priority   int    `json:"priority" yaml:"priority"`
	Investment int    `json:"investment" yaml:"investment"` // relative bubble size
}

// RoadmapPhase is one product release on the roadmap.
type RoadmapPhase struct {
	Phase       string `json:"phase" yaml:"phase"`
	Features    string `json:"features" yaml:"features"`
	TargetUsers string `json:"target_users" yaml:"target_users"`
	Status      Status `json:"status" yaml:"status"`
}

// TimelineTask is a dated implementation workstream.
type TimelineTask struct {
	Task   string    `json:"task" yaml:"task"`
	Start  time.Time `json:"start" yaml:"start"`
	End    time.Time `json:"end" yaml:"end"`
	Status Status    `json:"status" yaml:"status"`
}

// Insight is a sidebar callout.
type Insight struct {
	Tone  Tone   `json:"tone" yaml:"tone"`
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
}

// StrategicSummary holds the headline targets repeated in the footer.
type StrategicSummary struct {
	Target         string `json:"target" yaml:"target"`
	Price          string `json:"price" yaml:"price"`
	Differentiator string `json:"differentiator" yaml:"differentiator"`
	Goal           string `json:"goal" yaml:"goal"`
	MRRTarget      string `json:"mrr_target" yaml:"mrr_target"`
	Channels       string `json:"channels" yaml:"channels"`
	Updated        string `json:"updated" yaml:"updated"`
}

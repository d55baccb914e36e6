package view

import (
	"fmt"
	"math"

	"github.com/theirongolddev/stoki/internal/cli"
	"github.com/theirongolddev/stoki/internal/dataset"
	"github.com/theirongolddev/stoki/internal/model"
	"github.com/theirongolddev/stoki/internal/pipeline"
)

var volumeColors = map[model.Volume]string{
	model.VolumeHigh:   colorGreen,
	model.VolumeMedium: colorAmber,
	model.VolumeLow:    colorRed,
}

var statusColors = map[model.Status]string{
	model.StatusCompleted:  colorGreen,
	model.StatusInProgress: colorAmber,
	model.StatusPlanned:    colorSky,
	model.StatusFuture:     colorGray,
}

// ProgressCaption is the line under each progress bar.
func ProgressCaption(p model.Progress) string {
	return fmt.Sprintf("Target: %s %s (%d%%)", cli.FormatValue(p.Metric.Target), p.Metric.Unit, p.Percent)
}

func performanceTracker(t dataset.Tables) []Node {
	nodes := []Node{header("Initial Performance Metrics")}

	if len(t.Results) > dataset.ResultSatisfaction {
		signups := t.Results[dataset.ResultSignups]
		mrr := t.Results[dataset.ResultMRR]
		cac := t.Results[dataset.ResultCAC]
		score := t.Results[dataset.ResultSatisfaction].Current

		nodes = append(nodes, metrics(
			Metric{
				Label: "Business Signups",
				Value: cli.FormatValue(signups.Current),
				Delta: cli.FormatDelta(signups.Current, signups.Target),
			},
			Metric{
				Label: "Monthly Recurring Revenue",
				Value: cli.FormatRand(int64(mrr.Current)),
				Delta: fmt.Sprintf("%d%% of target", pipeline.MeasureProgress(mrr).Percent),
			},
			Metric{
				Label: "Customer Acquisition Cost",
				Value: cli.FormatRand(int64(cac.Current)),
				Delta: cli.FormatWholePercent(pipeline.PercentBelowTarget(cac)) + " below target",
			},
			Metric{
				Label: "Customer Satisfaction",
				Value: fmt.Sprintf("%.1f/5.0", score),
				Delta: fmt.Sprintf("%+d%%", int(math.Round(pipeline.SatisfactionLift(score)))),
			},
		))
	}

	nodes = append(nodes, subheader("Progress Towards Targets"))
	for _, p := range pipeline.MeasureAll(t.Results) {
		nodes = append(nodes, columns([]int{2, 1, 3},
			markdown("**"+p.Metric.Metric+"**"),
			markdown(cli.FormatValue(p.Metric.Current)+" "+p.Metric.Unit),
			progress(p.Ratio, ProgressCaption(p)),
		))
	}

	nodes = append(nodes, subheader("Quarterly Growth Projection"))
	signups := Series{Name: "Business Signups", Kind: SeriesBar, Color: colorBlue}
	mrr := Series{Name: "MRR (R'000)", Kind: SeriesLine, Axis: 1, Color: colorGreen}
	for _, q := range t.Plan.Growth {
		signups.Points = append(signups.Points, Point{Label: q.Quarter, Y: float64(q.Signups)})
		mrr.Points = append(mrr.Points, Point{Label: q.Quarter, Y: float64(q.MRRK)})
	}
	nodes = append(nodes, chart(Chart{
		Kind:    ChartCombo,
		Title:   "Growth Projection - First Year",
		XTitle:  "Quarter",
		YTitle:  "Business Signups",
		Y2Title: "MRR (R'000)",
		Series:  []Series{signups, mrr},
	}))
	return nodes
}

func goToMarketPlan(t dataset.Tables) []Node {
	nodes := []Node{header("Go-to-Market Strategy"), subheader("Acquisition Channel Strategy")}

	channels := Series{Name: "Channels"}
	for _, c := range t.Plan.Channels {
		channels.Points = append(channels.Points, Point{
			Label: c.Name,
			X:     float64(c.CAC),
			Y:     float64(c.Priority),
			Size:  float64(c.Investment),
			Color: volumeColors[c.Volume],
			Text:  c.Name,
			Group: string(c.Volume),
		})
	}
	nodes = append(nodes, chart(Chart{
		Kind:   ChartScatter,
		Title:  "Channel Strategy: CAC vs Priority (Size = Investment Focus)",
		XTitle: "Customer Acquisition Cost (R)",
		YTitle: "Priority (1 = Highest)",
		Series: []Series{channels},
		YTicks: []Tick{{1, "High"}, {2, "Medium"}, {3, "Low"}},
	}))

	nodes = append(nodes, subheader("Product Roadmap"))
	for i, r := range t.Plan.Roadmap {
		nodes = append(nodes, columns([]int{1, 3, 1},
			markdown("### "+r.Phase),
			markdown("**"+r.Features+"**\n\nTarget: "+r.TargetUsers),
			badge(r.Status.Tone(), string(r.Status)),
		))
		if i < len(t.Plan.Roadmap)-1 {
			nodes = append(nodes, separator())
		}
	}

	nodes = append(nodes, subheader("Implementation Timeline"))
	tasks := make([]Task, len(t.Plan.Timeline))
	for i, task := range t.Plan.Timeline {
		tasks[i] = Task{
			Name:   task.Task,
			Start:  task.Start,
			End:    task.End,
			Status: task.Status,
			Color:  statusColors[task.Status],
		}
	}
	nodes = append(nodes, chart(Chart{
		Kind:  ChartTimeline,
		Title: "Implementation Timeline",
		Tasks: tasks,
	}))
	return nodes
}

package components

import (
	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns red/orange/yellow/green as progress towards a target
// rises.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Green)
	case pct >= 0.7:
		return string(t.Yellow)
	case pct >= 0.5:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// TargetBar renders a progress bar filled to ratio with a caption line
// underneath. ratio is clamped to [0,1].
func TargetBar(ratio float64, caption string, width int) string {
	t := theme.Active

	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if width < 10 {
		width = 10
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(ratio)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	captionStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	return bar.ViewAs(ratio) + "\n" + captionStyle.Render(truncate(caption, width))
}

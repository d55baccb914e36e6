// Package components provides reusable TUI widgets for the stoki dashboard.
package components

import (
	"strings"

	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// LayoutWeighted splits totalWidth in proportion to weights. The last
// column absorbs rounding so the widths always sum to totalWidth.
func LayoutWeighted(totalWidth int, weights []int) []int {
	if len(weights) == 0 {
		return nil
	}
	sum := 0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum == 0 {
		return LayoutRow(totalWidth, len(weights))
	}

	widths := make([]int, len(weights))
	used := 0
	for i, w := range weights {
		if i == len(weights)-1 {
			widths[i] = totalWidth - used
			break
		}
		widths[i] = totalWidth * max(w, 0) / sum
		used += widths[i]
	}
	return widths
}

// deltaColor picks green for "+" deltas, red for "-" and muted otherwise.
func deltaColor(delta string) lipgloss.Color {
	t := theme.Active
	switch {
	case strings.HasPrefix(delta, "+"):
		return t.Green
	case strings.HasPrefix(delta, "-"):
		return t.Red
	default:
		return t.TextMuted
	}
}

// MetricCard renders a small metric card with label, value, and delta.
// outerWidth is the total rendered width including border.
func MetricCard(label, value, delta string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	valueStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)

	deltaStyle := lipgloss.NewStyle().
		Foreground(deltaColor(delta)).
		Background(t.Surface)

	content := labelStyle.Render(label) + "\n" +
		valueStyle.Render(value)
	if delta != "" {
		content += "\n" + deltaStyle.Render(delta)
	}

	return cardStyle.Render(content)
}

// MetricCardRow renders a row of metric cards side by side.
// totalWidth is the full row width; cards sum to exactly that.
func MetricCardRow(cards []struct{ Label, Value, Delta string }, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(cards))

	var rendered []string
	for i, c := range cards {
		rendered = append(rendered, MetricCard(c.Label, c.Value, c.Delta, widths[i]))
	}

	return CardRow(rendered)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border chars
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered card strings horizontally. Shorter cards are
// padded with background-colored lines so the row has no unstyled gaps.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	t := theme.Active

	tallest := 0
	for _, c := range cards {
		if h := lipgloss.Height(c); h > tallest {
			tallest = h
		}
	}

	fill := lipgloss.NewStyle().Background(t.Background)
	padded := make([]string, len(cards))
	for i, c := range cards {
		h := lipgloss.Height(c)
		if h >= tallest {
			padded[i] = c
			continue
		}
		w := lipgloss.Width(c)
		blank := fill.Render(strings.Repeat(" ", w))
		padded[i] = c + strings.Repeat("\n"+blank, tallest-h)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}

// toneColor maps a callout tone name to a theme color.
func toneColor(tone string) lipgloss.Color {
	t := theme.Active
	switch tone {
	case "success":
		return t.Green
	case "warning":
		return t.Orange
	default:
		return t.Blue
	}
}

// Callout renders a tinted box with a bold title followed by text, used
// for insight messages.
func Callout(tone, title, text string, outerWidth int) string {
	t := theme.Active
	c := toneColor(tone)

	contentWidth := outerWidth - 1 // left bar only
	if contentWidth < 10 {
		contentWidth = 10
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(c).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().Foreground(c).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	body := titleStyle.Render(title + ":")
	if text != "" {
		body += textStyle.Render(" " + text)
	}
	return boxStyle.Render(body)
}

// Badge renders a short status pill colored by tone.
func Badge(tone, text string) string {
	t := theme.Active
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(toneColor(tone)).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

package components

import (
	"github.com/theirongolddev/stoki/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// DataTable renders a static, unfocused table sized to its content. Columns
// shrink from the widest down when the total exceeds width.
func DataTable(headers []string, rows [][]string, width int) string {
	if len(headers) == 0 {
		return ""
	}
	t := theme.Active

	// Each cell carries one column of padding on either side.
	const cellPad = 2

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i := 0; i < len(headers) && i < len(r); i++ {
			widths[i] = max(widths[i], lipgloss.Width(r[i]))
		}
	}

	total := func() int {
		sum := 0
		for _, w := range widths {
			sum += w + cellPad
		}
		return sum
	}
	for total() > width {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 4 {
			break
		}
		widths[widest]--
	}

	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		cols[i] = table.Column{Title: h, Width: widths[i]}
	}
	tRows := make([]table.Row, len(rows))
	for i, r := range rows {
		row := make(table.Row, len(headers))
		copy(row, r)
		tRows[i] = row
	}

	tbl := table.New(
		table.WithColumns(cols),
		table.WithRows(tRows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	cell := lipgloss.NewStyle().Foreground(t.TextPrimary).Padding(0, 1)
	tbl.SetStyles(table.Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Cell:     cell,
		Selected: lipgloss.NewStyle(),
	})

	return tbl.View()
}

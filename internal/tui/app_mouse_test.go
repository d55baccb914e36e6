package tui

import (
	"testing"

	"github.com/theirongolddev/stoki/internal/view"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(view.All())
	for active := 0; active < n; active++ {
		a := App{focus: view.Focus(active)}
		pos := 0

		for i := 0; i < n; i++ {
			w := tabWidthForTest(i)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("active=%d x past last tab -> %d, want -1", active, got)
		}
	}
}

func tabWidthForTest(tabIdx int) int {
	nameWidths := []int{
		len("Market"),
		len("Competition"),
		len("Segments"),
		len("Positioning"),
		len("Performance"),
		len("Go-to-Market"),
	}
	return nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
}

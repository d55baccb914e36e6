package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/stoki/internal/tui/theme"
)

func TestColorForPct(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active
	tests := []struct {
		pct  float64
		want string
	}{
		{0, string(th.Red)},
		{0.49, string(th.Red)},
		{0.5, string(th.Orange)},
		{0.75, string(th.Yellow)},
		{0.9, string(th.Green)},
		{1, string(th.Green)},
	}
	for _, tt := range tests {
		if got := ColorForPct(tt.pct); got != tt.want {
			t.Errorf("ColorForPct(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestTargetBarClampsAndCaptions(t *testing.T) {
	theme.SetActive("flexoki-dark")
	full := TargetBar(1, "217 of 200 signups", 40)
	if got := TargetBar(3, "217 of 200 signups", 40); got != full {
		t.Error("ratio above 1 should render as a full bar")
	}
	if got, empty := TargetBar(-2, "c", 40), TargetBar(0, "c", 40); got != empty {
		t.Error("negative ratio should render as an empty bar")
	}
	lines := strings.Split(full, "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "217 of 200 signups") {
		t.Errorf("want bar plus caption line, got %q", full)
	}
}

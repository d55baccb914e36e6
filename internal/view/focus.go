package view

import (
	"errors"
	"fmt"
	"strings"
)

// Focus selects which analysis the body of the page shows.
type Focus int

const (
	MarketOverview Focus = iota
	CompetitiveLandscape
	TargetSegmentation
	PositioningStrategy
	PerformanceTracker
	GoToMarketPlan
)

// ErrUnknownFocus is returned by ParseFocus for names it does not know.
var ErrUnknownFocus = errors.New("unknown focus")

var focusNames = [...]string{
	MarketOverview:       "Market Overview",
	CompetitiveLandscape: "Competitive Landscape",
	TargetSegmentation:   "Target Segmentation",
	PositioningStrategy:  "Positioning Strategy",
	PerformanceTracker:   "Performance Tracker",
	GoToMarketPlan:       "Go-to-Market Plan",
}

// All returns every focus in selector order.
func All() []Focus {
	return []Focus{
		MarketOverview,
		CompetitiveLandscape,
		TargetSegmentation,
		PositioningStrategy,
		PerformanceTracker,
		GoToMarketPlan,
	}
}

// Valid reports whether f is one of the six foci.
func (f Focus) Valid() bool {
	return f >= MarketOverview && f <= GoToMarketPlan
}

// String returns the display name, e.g. "Go-to-Market Plan".
func (f Focus) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Focus(%d)", int(f))
	}
	return focusNames[f]
}

// Slug returns the kebab-case name used on the command line and in file
// names, e.g. "go-to-market-plan".
func (f Focus) Slug() string {
	return strings.ToLower(strings.ReplaceAll(f.String(), " ", "-"))
}

// MarshalText encodes the focus as its slug.
func (f Focus) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("marshal focus %d: %w", int(f), ErrUnknownFocus)
	}
	return []byte(f.Slug()), nil
}

// UnmarshalText accepts anything ParseFocus does.
func (f *Focus) UnmarshalText(b []byte) error {
	parsed, err := ParseFocus(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFocus matches a display name, slug or identifier such as
// "PerformanceTracker", ignoring case, spaces, hyphens and underscores.
func ParseFocus(s string) (Focus, error) {
	key := normalize(s)
	if key != "" {
		for _, f := range All() {
			if normalize(f.String()) == key {
				return f, nil
			}
		}
	}
	return MarketOverview, fmt.Errorf("%q: %w", s, ErrUnknownFocus)
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

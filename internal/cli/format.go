// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCompact formats a count with human-readable suffixes.
// e.g., 8200 -> "8.2K", 1234567 -> "1.2M"
func FormatCompact(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatRand formats a whole Rand amount with separators.
// e.g., 75000 -> "R75,000"
func FormatRand(n int64) string {
	if n < 0 {
		return "-R" + FormatNumber(-n)
	}
	return "R" + FormatNumber(n)
}

// FormatRandDecimal rounds a Rand amount to whole Rand and formats it.
func FormatRandDecimal(d decimal.Decimal) string {
	return FormatRand(d.Round(0).IntPart())
}

// FormatRandMillions formats an amount already expressed in millions.
// e.g., 2.5 -> "R2.5M", 0 -> "R0M"
func FormatRandMillions(d decimal.Decimal) string {
	if d.IsZero() {
		return "R0M"
	}
	return "R" + d.StringFixed(1) + "M"
}

// FormatMonths formats a month count to two decimals.
func FormatMonths(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatValue prints a float without a trailing ".0" when it is whole.
// e.g., 217 -> "217", 6.2 -> "6.2", 100000 -> "100,000"
func FormatValue(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return FormatNumber(int64(f))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatPercent formats a percentage (0-100) with one decimal.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatWholePercent rounds a percentage (0-100) half away from zero.
func FormatWholePercent(p float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(p)))
}

// FormatDelta formats a signed difference with an explicit sign.
// e.g., 17 -> "+17", -3 -> "-3"
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatValue(delta)
	}
	return "-" + FormatValue(-delta)
}

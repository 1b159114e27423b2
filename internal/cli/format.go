// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a rounded currency amount with comma separators.
// e.g., ("$", 1993) -> "$1,993"
func FormatMoney(currency string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(currency, -amount)
	}
	return currency + FormatNumber(int64(math.Round(amount)))
}

// FormatMoneyPrecise keeps cents, for rates and cost bases.
// e.g., ("$", 219.957) -> "$219.96"
func FormatMoneyPrecise(currency string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoneyPrecise(currency, -amount)
	}
	whole := math.Floor(amount)
	cents := math.Round((amount - whole) * 100)
	if cents >= 100 {
		whole++
		cents = 0
	}
	return fmt.Sprintf("%s%s.%02d", currency, FormatNumber(int64(whole)), int64(cents))
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

// FormatHours formats an hour count, dropping the fraction when whole.
// e.g., 7.25 -> "7.25h", 12 -> "12h"
func FormatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0fh", h)
	}
	return fmt.Sprintf("%.2fh", h)
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatMinutes formats a per-person pace value.
// e.g., 7.2 -> "7.2 min"
func FormatMinutes(m float64) string {
	return fmt.Sprintf("%.1f min", m)
}

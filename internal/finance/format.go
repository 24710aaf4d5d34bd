package finance

import (
	"fmt"
	"math"
)

// FormatCurrency renders an amount in euros with two decimals, e.g. "€36.50"
// or "€-500.00".
func FormatCurrency(v float64) string {
	return fmt.Sprintf("€%.2f", clean(v))
}

// FormatPercent renders a percentage with one decimal, e.g. "36.4%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", clean(v))
}

// clean drops negative zero so it never renders as "-0.00".
func clean(v float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

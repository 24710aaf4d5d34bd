// Package finance derives totals, the expense ratio and spending guidance
// from a budget state. Everything here is pure and recomputed on demand.
package finance

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// decimalPrefix matches the longest leading decimal literal of an amount.
var decimalPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseAmount converts user-entered text into a number. Leading whitespace is
// skipped and the longest leading decimal literal is used, so "12abc" is 12
// and "abc" is 0. Empty, blank, malformed or non-finite input yields 0.
// Negative and fractional values are accepted as typed.
func ParseAmount(text string) float64 {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if text == "" {
		return 0
	}

	literal := decimalPrefix.FindString(text)
	if literal == "" {
		return 0
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	return value
}

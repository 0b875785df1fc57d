package util

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// ParseAmount parses a user-entered money/number string. Thousands separators,
// currency signs, and a leading plus are stripped before parsing.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatMoney renders a value with grouped thousands and fixed 2 decimals,
// e.g. 6462.52 -> "6,462.52".
func FormatMoney(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// FormatPercent renders a value with plain fixed 2 decimals, e.g. "44.29".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	r, _ := strconv.ParseFloat(s, 64)
	return r
}

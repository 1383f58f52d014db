package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatValue prints the shortest decimal form that round-trips to v,
// so 0.1 stays "0.1" instead of a float64 expansion.
func formatValue(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// formatRounded rounds half away from zero to places and trims trailing zeros
func formatRounded(v float64, places int32) string {
	return decimal.NewFromFloat(v).Round(places).String()
}

// joinNames renders "A", "A and B", or "A, B, and C"
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

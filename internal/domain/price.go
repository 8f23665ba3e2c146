package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePriceLabel extracts the amount in pesos from a catalog display label.
// Labels look like "$1.200/Kg", "$700/bolsa" or "$3.800": a leading "$", dots
// as thousands separators, and an optional "/unit" suffix. Anything that does
// not parse yields zero — a bad label must never break a cart total.
func ParsePriceLabel(label string) decimal.Decimal {
	s := strings.TrimSpace(label)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".") // decimal comma, rare but seen in labels
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

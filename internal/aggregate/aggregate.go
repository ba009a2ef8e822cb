// Package aggregate holds the derived analytics computed over records fetched
// from the upstream API. Every function is total: malformed money strings
// count as zero instead of failing the whole reduction.
package aggregate

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/fieldops-server/internal/models"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads a money string the way the dashboards always have: blank
// is zero, otherwise the longest leading number wins ("12.5 KES" is 12.5) and
// anything without a leading number is zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(prefix, "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SumDecimal adds the selected money field across items.
func SumDecimal[T any](items []T, selector func(T) string) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ParseAmount(selector(item)))
	}
	return total
}

// Sum is SumDecimal converted to a float for display.
func Sum[T any](items []T, selector func(T) string) float64 {
	return SumDecimal(items, selector).InexactFloat64()
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Filter returns the items that satisfy pred, in order.
func Filter[T any](items []T, pred func(T) bool) []T {
	var out []T
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Rate returns part/whole as a percentage, or 0 when whole is not positive.
func Rate(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

// AverageRepaymentRate is the mean repayment rate across groups; 0 for none.
func AverageRepaymentRate(groups []models.Group) float64 {
	if len(groups) == 0 {
		return 0
	}
	total := 0.0
	for _, g := range groups {
		total += g.RepaymentRate
	}
	return total / float64(len(groups))
}

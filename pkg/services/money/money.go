package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var symbols = map[string]string{
	"USD": "$",
	"AUD": "$",
	"NZD": "$",
	"GBP": "£",
	"EUR": "€",
}

// ParseAmount converts a formatted display amount ("1,234.56",
// "-2,000", "$150.00") into a float. It is total: blank, nil-ish and
// non-numeric input all come back as 0 so that sparse category cells
// never poison an aggregation.
func ParseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")
	for _, sym := range symbols {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// FormatAmount renders a value as a fixed two-decimal currency string
// with thousands grouping, e.g. 1234.5 -> "$1,234.50". NaN and
// infinities render as the zero amount. Formatting is not the inverse
// of ParseAmount: parsing accepts arbitrary precision, formatting
// always fixes two decimals.
func FormatAmount(value float64, currency ...string) string {
	symbol := symbols["USD"]
	if len(currency) > 0 {
		if s, ok := symbols[strings.ToUpper(currency[0])]; ok {
			symbol = s
		}
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}

	d := decimal.NewFromFloat(value)
	negative := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(group(whole))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// group inserts thousands separators into an unsigned integer string.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

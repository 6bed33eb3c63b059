// internal/pkg/money/money.go
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the peso sign used across the shop screens
const DefaultSymbol = "₱"

// Formatter renders amounts with a fixed currency prefix
type Formatter struct {
	Symbol string
}

// NewFormatter creates a formatter, falling back to DefaultSymbol
func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return Formatter{Symbol: symbol}
}

// Format renders amount with the formatter's symbol
func (f Formatter) Format(amount decimal.Decimal) string {
	return Format(amount, f.Symbol)
}

// Format renders amount as symbol + thousands-grouped value with exactly
// two decimals, e.g. ₱1,234.50. Negative amounts put the sign before the symbol.
func Format(amount decimal.Decimal, symbol string) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		fixed = fixed[1:]
		if fixed != "0.00" {
			sign = "-"
		}
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + symbol + group(whole) + "." + frac
}

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

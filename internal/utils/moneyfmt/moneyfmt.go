// Package moneyfmt renders monetary amounts with per-currency precision,
// symbol placement, and grouping rules. Rendering is deterministic: it
// depends only on the amount and the currency's own metadata, never on the
// host locale.
package moneyfmt

import (
	"strings"

	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Round rounds an amount to the currency's decimal digits using
// round-half-to-even, normalising away negative zero.
func Round(amount decimal.Decimal, currency domain.CurrencyRecord) decimal.Decimal {
	rounded := amount.RoundBank(int32(currency.DecimalDigits))
	if rounded.IsZero() {
		return rounded.Abs()
	}
	return rounded
}

// Render produces "<symbol><value>" with exactly DecimalDigits fraction
// digits and thousands grouping where the currency allows it. Negative
// amounts carry a leading minus before the symbol.
// Example: Render(-1234.5, GBP) => "-£1,234.50".
func Render(amount decimal.Decimal, currency domain.CurrencyRecord) string {
	rounded := Round(amount, currency)
	negative := rounded.IsNegative()

	fixed := rounded.Abs().StringFixed(int32(currency.DecimalDigits))
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	if currency.DecimalDigits > 0 && !currency.NoGrouping {
		intPart = groupThousands(intPart)
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(currency.Symbol)
	b.WriteString(intPart)
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// groupThousands inserts comma separators into a plain digit string.
func groupThousands(digits string) string {
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

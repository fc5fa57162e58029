package services

import (
	"context"

	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatterSvc converts amounts between currencies and renders them with
// per-currency precision, symbol, and grouping rules.
type FormatterSvc interface {
	// Convert applies the provider rate and rounds half-to-even to the
	// target currency's decimal digits.
	Convert(ctx context.Context, amount decimal.Decimal, sourceCode, targetCode string) (*domain.ConversionResult, error)

	// Format renders amount in displayCode; an empty displayCode means the
	// current selection. When the rate is unavailable the amount is
	// rendered in its source currency with Degraded set, not an error.
	Format(ctx context.Context, amount decimal.Decimal, sourceCode, displayCode string) (*domain.FormattedAmount, error)
}

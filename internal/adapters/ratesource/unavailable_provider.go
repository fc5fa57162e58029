package ratesource

import (
	"context"
	"fmt"
	"strings"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/ports"
	"github.com/shopspring/decimal"
)

// UnavailableProvider is the provider used when no rate source is
// configured. Every non-identity lookup fails with ErrRateUnavailable, so
// the formatter degrades to source-currency rendering across the board.
type UnavailableProvider struct{}

// Ensure implementation matches interface
var _ ports.RateProvider = (*UnavailableProvider)(nil)

func NewUnavailableProvider() *UnavailableProvider {
	return &UnavailableProvider{}
}

func (UnavailableProvider) RateFor(ctx context.Context, source, target string) (decimal.Decimal, error) {
	if strings.EqualFold(source, target) {
		return decimal.NewFromInt(1), nil
	}
	return decimal.Zero, fmt.Errorf("%w: no rate source configured", apperrors.ErrRateUnavailable)
}

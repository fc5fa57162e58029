package ports

import (
	"context"

	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogSource supplies the currency listing the catalog is built from:
// currencies grouped by region plus the popular subset as a list of codes.
// Implementations map their transport failures to apperrors.ErrNetworkFailure
// and malformed payloads to apperrors.ErrParseFailure.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]domain.RegionGroup, []string, error)
}

// RateProvider supplies a conversion rate for a (source, target) currency
// pair. Rates may be stale or cached upstream; the engine treats the
// provider as a pure function that either returns a rate or fails with
// apperrors.ErrRateUnavailable. An identity pair (source == target) must
// return 1 without consulting any external source.
type RateProvider interface {
	RateFor(ctx context.Context, source, target string) (decimal.Decimal, error)
}

package services

import (
	"context"

	"github.com/fxlens/fxlens_backend/internal/core/domain"
)

// SearchSvc derives filtered and ranked views of the current catalog
// snapshot. All results preserve catalog load order as the stable tie-break.
type SearchSvc interface {
	// ByRegion returns one region's records. The synthetic "popular" and
	// "all" ids resolve to the popular subset and the deduplicated union;
	// an unknown id falls back to the popular subset.
	ByRegion(ctx context.Context, regionID domain.RegionID) ([]domain.CurrencyRecord, error)

	// Search matches the query case-insensitively as a substring of code,
	// name, or symbol, ranked exact code > prefix of code or name > any
	// substring. A blank query returns the popular view; no match returns
	// an empty slice and no error.
	Search(ctx context.Context, query string) ([]domain.CurrencyRecord, error)

	// Regions lists the regions of the current snapshot, including the
	// synthetic popular and all pseudo-regions with their counts.
	Regions(ctx context.Context) ([]domain.Region, error)
}

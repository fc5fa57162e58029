package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fxlens/fxlens_backend/internal/core/domain"
	portssvc "github.com/fxlens/fxlens_backend/internal/core/ports/services"
)

// SearchService answers region-filtered and free-text views of the current
// catalog snapshot. It holds no state of its own: every call reads the
// snapshot fresh, so results can never go stale across a catalog reload.
type SearchService struct {
	catalog portssvc.CatalogReaderSvc
}

func NewSearchService(catalog portssvc.CatalogReaderSvc) *SearchService {
	return &SearchService{catalog: catalog}
}

// ByRegion returns one region's records in catalog load order. Unknown
// region ids fall back to the popular subset rather than erroring.
func (s *SearchService) ByRegion(ctx context.Context, regionID domain.RegionID) ([]domain.CurrencyRecord, error) {
	cat, err := s.catalog.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve region view: %w", err)
	}
	records, ok := cat.Records(regionID)
	if !ok {
		records = cat.Popular()
	}
	return records, nil
}

// Search ranks matches: exact code first, then prefix of code or name, then
// any substring of code, name, or symbol. Catalog order is preserved within
// each rank. A blank query is "no search" and yields the popular view.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.CurrencyRecord, error) {
	cat, err := s.catalog.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cat.Popular(), nil
	}

	var exact, prefix, partial []domain.CurrencyRecord
	for _, rec := range cat.All() {
		code := strings.ToLower(rec.Code)
		name := strings.ToLower(rec.Name)
		symbol := strings.ToLower(rec.Symbol)

		switch {
		case code == q:
			exact = append(exact, rec)
		case strings.HasPrefix(code, q) || strings.HasPrefix(name, q):
			prefix = append(prefix, rec)
		case strings.Contains(code, q) || strings.Contains(name, q) || strings.Contains(symbol, q):
			partial = append(partial, rec)
		}
	}

	results := make([]domain.CurrencyRecord, 0, len(exact)+len(prefix)+len(partial))
	results = append(results, exact...)
	results = append(results, prefix...)
	results = append(results, partial...)
	return results, nil
}

// Regions lists the snapshot's regions including the synthetic popular and
// all pseudo-regions.
func (s *SearchService) Regions(ctx context.Context) ([]domain.Region, error) {
	cat, err := s.catalog.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return cat.Regions(), nil
}

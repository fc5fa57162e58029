package catalogsource

import (
	"context"
	"fmt"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/fxlens/fxlens_backend/internal/core/ports"
	"github.com/fxlens/fxlens_backend/internal/models"
	"github.com/fxlens/fxlens_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSource loads the catalog listing from the regions and currencies
// tables seeded by the migrations. Row position columns define catalog load
// order, which downstream ranking treats as the stable tie-break.
type PgxSource struct {
	pool *pgxpool.Pool
}

// Ensure implementation matches interface
var _ ports.CatalogSource = (*PgxSource)(nil)

func NewPgxSource(pool *pgxpool.Pool) *PgxSource {
	return &PgxSource{pool: pool}
}

func (s *PgxSource) Fetch(ctx context.Context) ([]domain.RegionGroup, []string, error) {
	regions, err := s.fetchRegions(ctx)
	if err != nil {
		return nil, nil, err
	}
	currencies, err := s.fetchCurrencies(ctx)
	if err != nil {
		return nil, nil, err
	}

	byRegion := make(map[string][]models.Currency, len(regions))
	var popular []string
	for _, c := range currencies {
		byRegion[c.RegionID] = append(byRegion[c.RegionID], c)
		if c.IsPopular {
			popular = append(popular, c.CurrencyCode)
		}
	}

	groups := make([]domain.RegionGroup, 0, len(regions))
	for _, r := range regions {
		rows, ok := byRegion[r.RegionID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: region %q has no currencies", apperrors.ErrParseFailure, r.RegionID)
		}
		groups = append(groups, domain.RegionGroup{
			ID:         domain.RegionID(r.RegionID),
			Name:       r.Name,
			Currencies: mapping.ToDomainCurrencies(rows),
		})
		delete(byRegion, r.RegionID)
	}
	if len(byRegion) > 0 {
		return nil, nil, fmt.Errorf("%w: currencies reference regions missing from the regions table", apperrors.ErrParseFailure)
	}

	return groups, popular, nil
}

func (s *PgxSource) fetchRegions(ctx context.Context) ([]models.Region, error) {
	query := `
		SELECT region_id, name
		FROM regions
		ORDER BY position;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying regions: %v", apperrors.ErrNetworkFailure, err)
	}
	defer rows.Close()

	regions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Region, error) {
		var r models.Region
		err := row.Scan(&r.RegionID, &r.Name)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scanning regions: %v", apperrors.ErrParseFailure, err)
	}
	return regions, nil
}

func (s *PgxSource) fetchCurrencies(ctx context.Context) ([]models.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, flag, region_id, is_popular, decimal_digits, no_grouping
		FROM currencies
		ORDER BY position;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying currencies: %v", apperrors.ErrNetworkFailure, err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var c models.Currency
		err := row.Scan(
			&c.CurrencyCode,
			&c.Symbol,
			&c.Name,
			&c.Flag,
			&c.RegionID,
			&c.IsPopular,
			&c.DecimalDigits,
			&c.NoGrouping,
		)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scanning currencies: %v", apperrors.ErrParseFailure, err)
	}
	return currencies, nil
}

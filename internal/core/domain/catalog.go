package domain

import (
	"fmt"
	"strings"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
)

// RegionGroup is one region's worth of catalog input, in source order.
type RegionGroup struct {
	ID         RegionID
	Name       string
	Currencies []CurrencyRecord
}

// Catalog is an immutable snapshot of every known currency, grouped by
// region, with a curated popular subset. A snapshot is built once by
// NewCatalog and never mutated; reloads produce a fresh snapshot that
// replaces the old one wholesale.
type Catalog struct {
	regions  []Region
	byRegion map[RegionID][]CurrencyRecord
	byCode   map[string]CurrencyRecord
	popular  []CurrencyRecord
	all      []CurrencyRecord
}

// NewCatalog validates the source listing and builds a snapshot. Region and
// record order is preserved as given (catalog load order is the stable
// tie-break everywhere downstream). It returns ErrParseFailure when a
// currency code appears twice, a record is missing required fields, or the
// popular subset references an unknown code.
func NewCatalog(groups []RegionGroup, popularCodes []string) (*Catalog, error) {
	c := &Catalog{
		byRegion: make(map[RegionID][]CurrencyRecord),
		byCode:   make(map[string]CurrencyRecord),
	}

	popularSet := make(map[string]bool, len(popularCodes))
	for _, code := range popularCodes {
		popularSet[strings.ToUpper(strings.TrimSpace(code))] = true
	}

	for _, g := range groups {
		if g.ID == "" || g.ID == RegionPopular || g.ID == RegionAll {
			return nil, fmt.Errorf("%w: invalid region id %q", apperrors.ErrParseFailure, g.ID)
		}
		if _, dup := c.byRegion[g.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate region %q", apperrors.ErrParseFailure, g.ID)
		}
		records := make([]CurrencyRecord, 0, len(g.Currencies))
		for _, rec := range g.Currencies {
			rec.Code = strings.ToUpper(strings.TrimSpace(rec.Code))
			rec.Region = g.ID
			if rec.Code == "" || rec.Symbol == "" || rec.Name == "" {
				return nil, fmt.Errorf("%w: incomplete currency record %q in region %q", apperrors.ErrParseFailure, rec.Code, g.ID)
			}
			if rec.DecimalDigits < 0 {
				return nil, fmt.Errorf("%w: negative decimal digits for %q", apperrors.ErrParseFailure, rec.Code)
			}
			if _, dup := c.byCode[rec.Code]; dup {
				return nil, fmt.Errorf("%w: duplicate currency code %q", apperrors.ErrParseFailure, rec.Code)
			}
			rec.IsPopular = popularSet[rec.Code]
			c.byCode[rec.Code] = rec
			records = append(records, rec)
			c.all = append(c.all, rec)
		}
		c.byRegion[g.ID] = records
		c.regions = append(c.regions, Region{ID: g.ID, Name: g.Name, Count: len(records)})
	}

	seenPopular := make(map[string]bool, len(popularCodes))
	for _, code := range popularCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		rec, ok := c.byCode[code]
		if !ok {
			return nil, fmt.Errorf("%w: popular subset references unknown code %q", apperrors.ErrParseFailure, code)
		}
		if seenPopular[code] {
			continue
		}
		seenPopular[code] = true
		c.popular = append(c.popular, rec)
	}

	if len(c.all) == 0 {
		return nil, fmt.Errorf("%w: catalog contains no currencies", apperrors.ErrParseFailure)
	}
	return c, nil
}

// Lookup returns the record for a code (case-insensitive) and whether it
// exists in this snapshot.
func (c *Catalog) Lookup(code string) (CurrencyRecord, bool) {
	rec, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return rec, ok
}

// Has reports whether a code exists in this snapshot.
func (c *Catalog) Has(code string) bool {
	_, ok := c.Lookup(code)
	return ok
}

// Records returns the records of one region in load order. The synthetic
// RegionPopular and RegionAll ids resolve to the popular subset and the
// deduplicated union respectively. The returned slice must not be mutated.
func (c *Catalog) Records(id RegionID) ([]CurrencyRecord, bool) {
	switch id {
	case RegionPopular:
		return c.popular, true
	case RegionAll:
		return c.all, true
	default:
		records, ok := c.byRegion[id]
		return records, ok
	}
}

// Popular returns the curated popular subset in load order.
func (c *Catalog) Popular() []CurrencyRecord {
	return c.popular
}

// All returns every record in load order, deduplicated by code.
func (c *Catalog) All() []CurrencyRecord {
	return c.all
}

// Regions lists the catalog's regions, prefixed by the synthetic popular
// and all pseudo-regions with their computed counts.
func (c *Catalog) Regions() []Region {
	out := make([]Region, 0, len(c.regions)+2)
	out = append(out,
		Region{ID: RegionPopular, Name: "Popular", Count: len(c.popular)},
		Region{ID: RegionAll, Name: "All", Count: len(c.all)},
	)
	out = append(out, c.regions...)
	return out
}

// Size returns the number of distinct currencies in the snapshot.
func (c *Catalog) Size() int {
	return len(c.all)
}

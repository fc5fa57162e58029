package dto

import "github.com/fxlens/fxlens_backend/internal/core/domain"

// CatalogDocument is the wire shape of the catalog source listing:
// currencies grouped by region plus the popular subset as a list of codes.
type CatalogDocument struct {
	Regions []RegionDocument `json:"regions"`
	Popular []string         `json:"popular"`
}

// RegionDocument is one region grouping in the catalog listing.
type RegionDocument struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Currencies []CurrencyDocument `json:"currencies"`
}

// CurrencyDocument is one currency entry in the catalog listing.
// DecimalDigits is a pointer so that an omitted value can default to
// domain.DefaultDecimalDigits instead of zero.
type CurrencyDocument struct {
	Code          string `json:"code"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Flag          string `json:"flag"`
	DecimalDigits *int   `json:"decimalDigits"`
	NoGrouping    bool   `json:"noGrouping"`
}

// ToRegionGroups maps the wire document onto the domain input shape.
func (d *CatalogDocument) ToRegionGroups() []domain.RegionGroup {
	groups := make([]domain.RegionGroup, len(d.Regions))
	for i, rd := range d.Regions {
		records := make([]domain.CurrencyRecord, len(rd.Currencies))
		for j, cd := range rd.Currencies {
			digits := domain.DefaultDecimalDigits
			if cd.DecimalDigits != nil {
				digits = *cd.DecimalDigits
			}
			records[j] = domain.CurrencyRecord{
				Code:          cd.Code,
				Symbol:        cd.Symbol,
				Name:          cd.Name,
				Flag:          cd.Flag,
				DecimalDigits: digits,
				NoGrouping:    cd.NoGrouping,
			}
		}
		groups[i] = domain.RegionGroup{
			ID:         domain.RegionID(rd.ID),
			Name:       rd.Name,
			Currencies: records,
		}
	}
	return groups
}

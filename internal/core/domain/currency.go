package domain

// DefaultCurrencyCode is the display currency used when no selection has
// been made or the stored selection is absent from the current catalog.
const DefaultCurrencyCode = "USD"

// DefaultDecimalDigits is the fraction precision assumed for currencies
// that do not declare one.
const DefaultDecimalDigits = 2

// RegionID tags a group of currencies (e.g. a continent or economic area).
type RegionID string

// Synthetic region identifiers. RegionPopular selects the curated popular
// subset; RegionAll selects the union of every region with duplicates
// removed by code. Neither is stored on a CurrencyRecord.
const (
	RegionPopular RegionID = "popular"
	RegionAll     RegionID = "all"
)

// CurrencyRecord describes a single currency known to the catalog.
type CurrencyRecord struct {
	Code          string   `json:"code"`   // Primary key (e.g., "USD")
	Symbol        string   `json:"symbol"` // e.g., "$"
	Name          string   `json:"name"`   // e.g., "US Dollar"
	Flag          string   `json:"flag"`   // Icon reference (e.g., "us")
	Region        RegionID `json:"region"`
	IsPopular     bool     `json:"isPopular"`
	DecimalDigits int      `json:"decimalDigits"`
	// NoGrouping suppresses thousands separators when rendering amounts.
	// Static per-currency configuration, not derived from a locale.
	NoGrouping bool `json:"noGrouping"`
}

// Region describes a currency grouping together with the number of records
// it held at catalog load time.
type Region struct {
	ID    RegionID `json:"id"`
	Name  string   `json:"name"`
	Count int      `json:"count"`
}

package models

// Currency is the row shape of the currencies table.
type Currency struct {
	CurrencyCode  string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol        string `json:"symbol"`       // e.g., "$"
	Name          string `json:"name"`         // e.g., "US Dollar"
	Flag          string `json:"flag"`
	RegionID      string `json:"regionID"`
	IsPopular     bool   `json:"isPopular"`
	DecimalDigits int    `json:"decimalDigits"`
	NoGrouping    bool   `json:"noGrouping"`
}

// Region is the row shape of the regions table.
type Region struct {
	RegionID string `json:"regionID"` // Primary Key (e.g., "europe")
	Name     string `json:"name"`     // e.g., "Europe"
}

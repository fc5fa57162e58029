package dto

import (
	"github.com/fxlens/fxlens_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code          string `json:"code"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Flag          string `json:"flag,omitempty"`
	Region        string `json:"region"`
	IsPopular     bool   `json:"isPopular"`
	DecimalDigits int    `json:"decimalDigits"`
}

// ToCurrencyResponse converts a domain.CurrencyRecord to CurrencyResponse DTO
func ToCurrencyResponse(rec domain.CurrencyRecord) CurrencyResponse {
	return CurrencyResponse{
		Code:          rec.Code,
		Symbol:        rec.Symbol,
		Name:          rec.Name,
		Flag:          rec.Flag,
		Region:        string(rec.Region),
		IsPopular:     rec.IsPopular,
		DecimalDigits: rec.DecimalDigits,
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyRecord to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(records []domain.CurrencyRecord) []CurrencyResponse {
	res := make([]CurrencyResponse, len(records))
	for i, rec := range records {
		res[i] = ToCurrencyResponse(rec)
	}
	return res
}

// RegionResponse defines the data returned for a region grouping.
type RegionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ToListRegionResponse converts domain regions to DTOs.
func ToListRegionResponse(regions []domain.Region) []RegionResponse {
	res := make([]RegionResponse, len(regions))
	for i, r := range regions {
		res[i] = RegionResponse{ID: string(r.ID), Name: r.Name, Count: r.Count}
	}
	return res
}

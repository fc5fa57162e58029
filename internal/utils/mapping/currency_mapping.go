package mapping

import (
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/fxlens/fxlens_backend/internal/models"
)

// ToDomainCurrency converts a currencies table row to a domain record.
func ToDomainCurrency(m models.Currency) domain.CurrencyRecord {
	return domain.CurrencyRecord{
		Code:          m.CurrencyCode,
		Symbol:        m.Symbol,
		Name:          m.Name,
		Flag:          m.Flag,
		Region:        domain.RegionID(m.RegionID),
		IsPopular:     m.IsPopular,
		DecimalDigits: m.DecimalDigits,
		NoGrouping:    m.NoGrouping,
	}
}

// ToDomainCurrencies converts a slice of rows, preserving order.
func ToDomainCurrencies(rows []models.Currency) []domain.CurrencyRecord {
	out := make([]domain.CurrencyRecord, len(rows))
	for i, m := range rows {
		out[i] = ToDomainCurrency(m)
	}
	return out
}

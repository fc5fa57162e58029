package dto

import (
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatRequest carries the query parameters of a format call. Amount stays
// a string through binding and is parsed as a decimal in the handler. To is
// optional; when omitted the current selection is used.
type FormatRequest struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required,uppercase,len=3"`
	To     string `form:"to" binding:"omitempty,uppercase,len=3"`
}

// FormatResponse defines the data returned for a formatted amount.
type FormatResponse struct {
	Text         string          `json:"text"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	Degraded     bool            `json:"degraded"`
}

// ToFormatResponse converts a domain.FormattedAmount to a FormatResponse DTO
func ToFormatResponse(fa *domain.FormattedAmount) FormatResponse {
	return FormatResponse{
		Text:         fa.Text,
		CurrencyCode: fa.CurrencyCode,
		Amount:       fa.Amount,
		Degraded:     fa.Degraded,
	}
}

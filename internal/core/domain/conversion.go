package domain

import "github.com/shopspring/decimal"

// ConversionResult is a converted amount before rendering. Amount is
// rounded half-to-even to the target currency's decimal digits and is never
// negative zero.
type ConversionResult struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// FormattedAmount is the rendered form of a monetary amount. Degraded is
// set when the conversion rate was unavailable and the amount is shown in
// its source currency instead; callers that need a conversion-unavailable
// indicator react to it, everyone else just displays Text.
type FormattedAmount struct {
	Text         string          `json:"text"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	Degraded     bool            `json:"degraded"`
}

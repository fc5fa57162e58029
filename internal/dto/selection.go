package dto

// SelectionResponse defines the data returned for the active display currency.
type SelectionResponse struct {
	CurrencyCode string `json:"currencyCode"`
}

// UpdateSelectionRequest defines the data needed to change the display currency.
type UpdateSelectionRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
}

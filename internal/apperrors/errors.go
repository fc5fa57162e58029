package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNetworkFailure indicates that the catalog source could not be reached.
var ErrNetworkFailure = errors.New("network failure")

// ErrParseFailure indicates that the catalog source returned malformed or
// partial data.
var ErrParseFailure = errors.New("parse failure")

// ErrCatalogNotLoaded indicates that no catalog snapshot has been loaded yet.
var ErrCatalogNotLoaded = errors.New("catalog not loaded")

// ErrRateUnavailable indicates that no conversion rate could be obtained for
// a currency pair.
var ErrRateUnavailable = errors.New("rate unavailable")

// ErrUnknownCurrency indicates a currency code absent from the current
// catalog snapshot.
var ErrUnknownCurrency = errors.New("unknown currency")

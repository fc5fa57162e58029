// Package ratesource provides rate provider adapters: an HTTP client for an
// external rate endpoint and a Redis read-through cache that wraps any
// provider.
package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/ports"
	"github.com/shopspring/decimal"
)

// rateDocument is the wire shape of the rate endpoint response. The rate is
// a decimal string to avoid float drift.
type rateDocument struct {
	Rate decimal.Decimal `json:"rate"`
}

// HTTPProvider fetches conversion rates from a JSON endpoint. Any failure,
// whether transport, status, or payload, surfaces as ErrRateUnavailable; the
// formatter decides how to degrade. The client timeout is this provider's
// own obligation, callers impose none.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// Ensure implementation matches interface
var _ ports.RateProvider = (*HTTPProvider)(nil)

func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// RateFor returns the source→target conversion rate. Identity pairs return
// 1 without an HTTP call.
func (p *HTTPProvider) RateFor(ctx context.Context, source, target string) (decimal.Decimal, error) {
	source = strings.ToUpper(source)
	target = strings.ToUpper(target)
	if source == target {
		return decimal.NewFromInt(1), nil
	}

	endpoint := fmt.Sprintf("%s/rate?from=%s&to=%s", p.baseURL, url.QueryEscape(source), url.QueryEscape(target))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: building rate request: %v", apperrors.ErrRateUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: fetching rate %s->%s: %v", apperrors.ErrRateUnavailable, source, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: rate source returned status %d for %s->%s", apperrors.ErrRateUnavailable, resp.StatusCode, source, target)
	}

	var doc rateDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decoding rate response: %v", apperrors.ErrRateUnavailable, err)
	}
	if doc.Rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: non-positive rate for %s->%s", apperrors.ErrRateUnavailable, source, target)
	}

	return doc.Rate, nil
}

// Package catalogsource provides the catalog source adapters the engine
// loads its currency listing from.
package catalogsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/fxlens/fxlens_backend/internal/core/ports"
	"github.com/fxlens/fxlens_backend/internal/dto"
)

// HTTPSource fetches the catalog listing from a JSON endpoint shaped as
// dto.CatalogDocument.
type HTTPSource struct {
	url    string
	client *http.Client
}

// Ensure implementation matches interface
var _ ports.CatalogSource = (*HTTPSource)(nil)

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves and decodes the catalog document. Transport errors and
// non-200 responses are network failures; anything undecodable is a parse
// failure. Structural validation happens later in domain.NewCatalog.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.RegionGroup, []string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: building catalog request: %v", apperrors.ErrNetworkFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: fetching catalog: %v", apperrors.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: catalog source returned status %d", apperrors.ErrNetworkFailure, resp.StatusCode)
	}

	var doc dto.CatalogDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: decoding catalog document: %v", apperrors.ErrParseFailure, err)
	}
	if len(doc.Regions) == 0 {
		return nil, nil, fmt.Errorf("%w: catalog document has no regions", apperrors.ErrParseFailure)
	}

	return doc.ToRegionGroups(), doc.Popular, nil
}

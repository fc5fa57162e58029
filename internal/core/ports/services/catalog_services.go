package services

import (
	"context"

	"github.com/fxlens/fxlens_backend/internal/core/domain"
)

// CatalogReaderSvc defines read access to the loaded catalog snapshot.
type CatalogReaderSvc interface {
	// Current returns the latest successfully loaded snapshot, or
	// apperrors.ErrCatalogNotLoaded when no load has succeeded yet.
	Current() (*domain.Catalog, error)
}

// CatalogLoaderSvc defines the load lifecycle of the catalog.
type CatalogLoaderSvc interface {
	// Load returns the existing snapshot when one is loaded; otherwise it
	// fetches one. Concurrent callers share a single in-flight fetch.
	Load(ctx context.Context) (*domain.Catalog, error)

	// Reload forces a fresh fetch and atomically swaps the snapshot on
	// success. On failure the previous snapshot keeps serving reads.
	Reload(ctx context.Context) (*domain.Catalog, error)
}

// CatalogSvcFacade combines all catalog service interfaces.
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogLoaderSvc
}

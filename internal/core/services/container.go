package services

import (
	"github.com/fxlens/fxlens_backend/internal/core/ports"
	portssvc "github.com/fxlens/fxlens_backend/internal/core/ports/services"
)

// NewContainer wires the engine's services with their dependencies and
// returns them behind the port interfaces the handlers consume.
func NewContainer(source ports.CatalogSource, rates ports.RateProvider, defaultCurrency string) *portssvc.ServiceContainer {
	catalog := NewCatalogService(source)
	selection := NewSelectionService(catalog, defaultCurrency)

	return &portssvc.ServiceContainer{
		Catalog:   catalog,
		Search:    NewSearchService(catalog),
		Formatter: NewFormatterService(rates, catalog, selection),
		Selection: selection,
	}
}

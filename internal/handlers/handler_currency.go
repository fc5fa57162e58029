package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	portssvc "github.com/fxlens/fxlens_backend/internal/core/ports/services"
	"github.com/fxlens/fxlens_backend/internal/dto"
	"github.com/fxlens/fxlens_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to the currency catalog.
type currencyHandler struct {
	catalogService portssvc.CatalogSvcFacade
	searchService  portssvc.SearchSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CatalogSvcFacade, ss portssvc.SearchSvc) *currencyHandler {
	return &currencyHandler{
		catalogService: cs,
		searchService:  ss,
	}
}

// registerCurrencyRoutes registers routes related to the currency catalog.
func registerCurrencyRoutes(rg *gin.RouterGroup, cs portssvc.CatalogSvcFacade, ss portssvc.SearchSvc) {
	h := newCurrencyHandler(cs, ss)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
	rg.GET("/regions", h.listRegions)
	rg.POST("/catalog/reload", h.reloadCatalog)
}

// listCurrencies godoc
// @Summary List currencies
// @Description Returns a region view of the catalog, or search results when q is given
// @Tags currencies
// @Produce  json
// @Param   region query string false "Region id (popular, all, or a catalog region)"
// @Param   q query string false "Free-text search over code, name, and symbol"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 503 {object} map[string]string "Catalog not loaded yet"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		records []domain.CurrencyRecord
		err     error
	)
	query := c.Query("q")
	if strings.TrimSpace(query) != "" {
		records, err = h.searchService.Search(c.Request.Context(), query)
	} else {
		regionID := domain.RegionID(c.DefaultQuery("region", string(domain.RegionPopular)))
		records, err = h.searchService.ByRegion(c.Request.Context(), regionID)
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrCatalogNotLoaded) {
			logger.Warn("Catalog not loaded yet")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Currency catalog not loaded yet"})
			return
		}
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(records))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 503 {object} map[string]string "Catalog not loaded yet"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	cat, err := h.catalogService.Current()
	if err != nil {
		logger.Warn("Catalog not loaded yet")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Currency catalog not loaded yet"})
		return
	}

	rec, ok := cat.Lookup(currencyCode)
	if !ok {
		logger.Warn("Currency not found", slog.String("currency_code", currencyCode))
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(rec))
}

// listRegions godoc
// @Summary List regions
// @Description Lists catalog regions including the synthetic popular and all groupings with their counts
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.RegionResponse
// @Failure 503 {object} map[string]string "Catalog not loaded yet"
// @Router /regions [get]
func (h *currencyHandler) listRegions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	regions, err := h.searchService.Regions(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrCatalogNotLoaded) {
			logger.Warn("Catalog not loaded yet")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Currency catalog not loaded yet"})
			return
		}
		logger.Error("Failed to list regions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list regions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRegionResponse(regions))
}

// reloadCatalog godoc
// @Summary Reload the currency catalog
// @Description Forces a fresh catalog fetch; on failure the previous snapshot keeps serving
// @Tags currencies
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string "Catalog source failed"
// @Router /catalog/reload [post]
func (h *currencyHandler) reloadCatalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cat, err := h.catalogService.Reload(c.Request.Context())
	if err != nil {
		logger.Error("Catalog reload failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reload currency catalog"})
		return
	}

	logger.Info("Catalog reloaded", slog.Int("currencies", cat.Size()))
	c.JSON(http.StatusOK, gin.H{"currencies": cat.Size()})
}

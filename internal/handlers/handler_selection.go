package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	portssvc "github.com/fxlens/fxlens_backend/internal/core/ports/services"
	"github.com/fxlens/fxlens_backend/internal/dto"
	"github.com/fxlens/fxlens_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// selectionHandler handles HTTP requests for the active display currency.
type selectionHandler struct {
	selectionService portssvc.SelectionSvc
}

func newSelectionHandler(ss portssvc.SelectionSvc) *selectionHandler {
	return &selectionHandler{selectionService: ss}
}

// registerSelectionRoutes registers the selection routes.
func registerSelectionRoutes(rg *gin.RouterGroup, ss portssvc.SelectionSvc) {
	h := newSelectionHandler(ss)

	selection := rg.Group("/selection")
	{
		selection.GET("", h.getSelection)
		selection.PUT("", h.updateSelection)
	}
}

// getSelection godoc
// @Summary Get the active display currency
// @Tags selection
// @Produce  json
// @Success 200 {object} dto.SelectionResponse
// @Router /selection [get]
func (h *selectionHandler) getSelection(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SelectionResponse{CurrencyCode: h.selectionService.Get()})
}

// updateSelection godoc
// @Summary Set the active display currency
// @Description Rejects codes absent from the current catalog snapshot; the previous selection stays active
// @Tags selection
// @Accept  json
// @Produce  json
// @Param   selection body dto.UpdateSelectionRequest true "New display currency"
// @Success 200 {object} dto.SelectionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency"
// @Failure 503 {object} map[string]string "Catalog not loaded yet"
// @Router /selection [put]
func (h *selectionHandler) updateSelection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSelection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.selectionService.Set(req.CurrencyCode); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Rejected unknown display currency", slog.String("currency_code", req.CurrencyCode))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrCatalogNotLoaded):
			logger.Warn("Catalog not loaded yet")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Currency catalog not loaded yet"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update selection", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update selection"})
		}
		return
	}

	logger.Info("Display currency updated", slog.String("currency_code", req.CurrencyCode))
	c.JSON(http.StatusOK, dto.SelectionResponse{CurrencyCode: h.selectionService.Get()})
}

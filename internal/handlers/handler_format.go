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
	"github.com/shopspring/decimal"
)

// formatHandler handles HTTP requests for conversion-formatting.
type formatHandler struct {
	formatterService portssvc.FormatterSvc
}

func newFormatHandler(fs portssvc.FormatterSvc) *formatHandler {
	return &formatHandler{formatterService: fs}
}

// registerFormatRoutes registers the format route.
func registerFormatRoutes(rg *gin.RouterGroup, fs portssvc.FormatterSvc) {
	h := newFormatHandler(fs)
	rg.GET("/format", h.formatAmount)
}

// formatAmount godoc
// @Summary Format a monetary amount
// @Description Converts an amount from its source currency into the display currency and renders it; falls back to the source currency when no rate is available (degraded=true)
// @Tags format
// @Produce  json
// @Param   amount query string true "Amount, decimal string"
// @Param   from query string true "Source currency code (3 letters)"
// @Param   to query string false "Display currency code; defaults to the active selection"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency"
// @Failure 503 {object} map[string]string "Catalog not loaded yet"
// @Router /format [get]
func (h *formatHandler) formatAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FormatRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind format query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		logger.Warn("Invalid amount", slog.String("amount", req.Amount))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a decimal number"})
		return
	}

	formatted, err := h.formatterService.Format(c.Request.Context(), amount, req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCatalogNotLoaded):
			logger.Warn("Catalog not loaded yet")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Currency catalog not loaded yet"})
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Unknown currency in format request", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to format amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to format amount"})
		}
		return
	}

	if formatted.Degraded {
		logger.Info("Rendered amount without conversion",
			slog.String("source", req.From),
			slog.String("display", req.To),
		)
	}
	c.JSON(http.StatusOK, dto.ToFormatResponse(formatted))
}

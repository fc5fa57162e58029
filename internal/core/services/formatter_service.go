package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/fxlens/fxlens_backend/internal/core/ports"
	portssvc "github.com/fxlens/fxlens_backend/internal/core/ports/services"
	"github.com/fxlens/fxlens_backend/internal/metrics"
	"github.com/fxlens/fxlens_backend/internal/utils/moneyfmt"
	"github.com/shopspring/decimal"
)

// FormatterService converts amounts via the rate provider and renders them
// with the display currency's formatting rules. Rate failures degrade to
// the unconverted source amount instead of propagating: the user sees the
// amount in its original currency, and the result is tagged so callers that
// need a conversion-unavailable indicator can react.
type FormatterService struct {
	rates     ports.RateProvider
	catalog   portssvc.CatalogReaderSvc
	selection portssvc.SelectionSvc
}

func NewFormatterService(rates ports.RateProvider, catalog portssvc.CatalogReaderSvc, selection portssvc.SelectionSvc) *FormatterService {
	return &FormatterService{rates: rates, catalog: catalog, selection: selection}
}

// Convert computes amount * rate rounded half-to-even to the target's
// decimal digits. Identity pairs never touch the rate provider.
func (s *FormatterService) Convert(ctx context.Context, amount decimal.Decimal, sourceCode, targetCode string) (*domain.ConversionResult, error) {
	cat, err := s.catalog.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to convert amount: %w", err)
	}
	source, ok := cat.Lookup(sourceCode)
	if !ok {
		return nil, fmt.Errorf("%w: source currency %q", apperrors.ErrUnknownCurrency, sourceCode)
	}
	target, ok := cat.Lookup(targetCode)
	if !ok {
		return nil, fmt.Errorf("%w: target currency %q", apperrors.ErrUnknownCurrency, targetCode)
	}

	if source.Code == target.Code {
		return &domain.ConversionResult{
			Amount:       moneyfmt.Round(amount, target),
			CurrencyCode: target.Code,
		}, nil
	}

	rate, err := s.rates.RateFor(ctx, source.Code, target.Code)
	if err != nil {
		metrics.RateLookupsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %s->%s", apperrors.ErrRateUnavailable, source.Code, target.Code)
	}
	metrics.RateLookupsTotal.WithLabelValues("ok").Inc()

	return &domain.ConversionResult{
		Amount:       moneyfmt.Round(amount.Mul(rate), target),
		CurrencyCode: target.Code,
	}, nil
}

// Format renders amount in displayCode; an empty displayCode means the
// current selection. When sourceCode equals the display currency the rate
// provider is never consulted. A rate failure falls back to rendering the
// source amount with Degraded set and a nil error.
func (s *FormatterService) Format(ctx context.Context, amount decimal.Decimal, sourceCode, displayCode string) (*domain.FormattedAmount, error) {
	cat, err := s.catalog.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to format amount: %w", err)
	}
	source, ok := cat.Lookup(sourceCode)
	if !ok {
		return nil, fmt.Errorf("%w: source currency %q", apperrors.ErrUnknownCurrency, sourceCode)
	}

	if displayCode == "" {
		displayCode = s.selection.Get()
	}
	display, ok := cat.Lookup(displayCode)
	if !ok {
		return nil, fmt.Errorf("%w: display currency %q", apperrors.ErrUnknownCurrency, displayCode)
	}

	if source.Code == display.Code {
		rounded := moneyfmt.Round(amount, display)
		return &domain.FormattedAmount{
			Text:         moneyfmt.Render(rounded, display),
			CurrencyCode: display.Code,
			Amount:       rounded,
		}, nil
	}

	result, err := s.Convert(ctx, amount, source.Code, display.Code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrRateUnavailable) {
			return nil, err
		}
		// Degrade gracefully: show the source-currency amount unconverted.
		metrics.FormatsDegradedTotal.Inc()
		rounded := moneyfmt.Round(amount, source)
		return &domain.FormattedAmount{
			Text:         moneyfmt.Render(rounded, source),
			CurrencyCode: source.Code,
			Amount:       rounded,
			Degraded:     true,
		}, nil
	}

	return &domain.FormattedAmount{
		Text:         moneyfmt.Render(result.Amount, display),
		CurrencyCode: display.Code,
		Amount:       result.Amount,
	}, nil
}

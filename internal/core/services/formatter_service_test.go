package services_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// failingRateProvider fails every non-identity lookup and counts calls, so
// tests can assert the provider was (or was not) consulted.
type failingRateProvider struct {
	calls atomic.Int64
}

func (p *failingRateProvider) RateFor(ctx context.Context, source, target string) (decimal.Decimal, error) {
	p.calls.Add(1)
	return decimal.Zero, apperrors.ErrRateUnavailable
}

// fixedRateProvider returns one rate for every pair.
type fixedRateProvider struct {
	rate  decimal.Decimal
	calls atomic.Int64
}

func (p *fixedRateProvider) RateFor(ctx context.Context, source, target string) (decimal.Decimal, error) {
	p.calls.Add(1)
	return p.rate, nil
}

type FormatterServiceTestSuite struct {
	suite.Suite
	reader    *stubCatalogReader
	selection *services.SelectionService
}

func (suite *FormatterServiceTestSuite) SetupTest() {
	suite.reader = &stubCatalogReader{cat: testCatalog(suite.T())}
	suite.selection = services.NewSelectionService(suite.reader, "USD")
}

func (suite *FormatterServiceTestSuite) newService(rates interface {
	RateFor(ctx context.Context, source, target string) (decimal.Decimal, error)
}) *services.FormatterService {
	return services.NewFormatterService(rates, suite.reader, suite.selection)
}

func (suite *FormatterServiceTestSuite) TestFormat_IdentitySkipsRateProvider() {
	ctx := context.Background()
	rates := &failingRateProvider{}
	service := suite.newService(rates)

	result, err := service.Format(ctx, decimal.RequireFromString("100.00"), "GBP", "GBP")

	suite.Require().NoError(err)
	suite.Equal("£100.00", result.Text)
	suite.Equal("GBP", result.CurrencyCode)
	suite.False(result.Degraded)
	suite.EqualValues(0, rates.calls.Load(), "identity conversion must not consult the rate provider")
}

func (suite *FormatterServiceTestSuite) TestFormat_TwoFractionDigitsRoundTrip() {
	ctx := context.Background()
	service := suite.newService(&failingRateProvider{})

	result, err := service.Format(ctx, decimal.RequireFromString("100"), "GBP", "GBP")

	suite.Require().NoError(err)
	suite.Equal("£100.00", result.Text)
}

func (suite *FormatterServiceTestSuite) TestFormat_ZeroDigitCurrencyHasNoDecimalPoint() {
	ctx := context.Background()
	service := suite.newService(&failingRateProvider{})

	result, err := service.Format(ctx, decimal.RequireFromString("1500.50"), "JPY", "JPY")

	suite.Require().NoError(err)
	suite.NotContains(result.Text, ".")
	suite.Equal("¥1500", result.Text, "1500.50 rounds half-to-even to 1500")
}

func (suite *FormatterServiceTestSuite) TestFormat_RoundsHalfToEven() {
	ctx := context.Background()
	service := suite.newService(&failingRateProvider{})

	down, err := service.Format(ctx, decimal.RequireFromString("2.345"), "USD", "USD")
	suite.Require().NoError(err)
	suite.Equal("$2.34", down.Text)

	up, err := service.Format(ctx, decimal.RequireFromString("2.355"), "USD", "USD")
	suite.Require().NoError(err)
	suite.Equal("$2.36", up.Text)
}

func (suite *FormatterServiceTestSuite) TestFormat_NegativeAmount() {
	ctx := context.Background()
	service := suite.newService(&failingRateProvider{})

	result, err := service.Format(ctx, decimal.RequireFromString("-1234.5"), "GBP", "GBP")

	suite.Require().NoError(err)
	suite.Equal("-£1,234.50", result.Text)
}

func (suite *FormatterServiceTestSuite) TestFormat_NoNegativeZero() {
	ctx := context.Background()
	service := suite.newService(&failingRateProvider{})

	result, err := service.Format(ctx, decimal.RequireFromString("-0.001"), "USD", "USD")

	suite.Require().NoError(err)
	suite.Equal("$0.00", result.Text)
	suite.False(result.Amount.IsNegative())
}

func (suite *FormatterServiceTestSuite) TestFormat_ConvertsWithProviderRate() {
	ctx := context.Background()
	rates := &fixedRateProvider{rate: decimal.RequireFromString("1.25")}
	service := suite.newService(rates)

	result, err := service.Format(ctx, decimal.RequireFromString("100"), "GBP", "USD")

	suite.Require().NoError(err)
	suite.Equal("$125.00", result.Text)
	suite.Equal("USD", result.CurrencyCode)
	suite.False(result.Degraded)
	suite.EqualValues(1, rates.calls.Load())
}

func (suite *FormatterServiceTestSuite) TestFormat_GroupsThousands() {
	ctx := context.Background()
	rates := &fixedRateProvider{rate: decimal.RequireFromString("190.75")}
	service := suite.newService(rates)

	result, err := service.Format(ctx, decimal.RequireFromString("10000"), "GBP", "USD")

	suite.Require().NoError(err)
	suite.Equal("$1,907,500.00", result.Text)
}

func (suite *FormatterServiceTestSuite) TestFormat_DegradesWhenRateUnavailable() {
	ctx := context.Background()
	rates := &failingRateProvider{}
	service := suite.newService(rates)

	result, err := service.Format(ctx, decimal.RequireFromString("99.99"), "GBP", "USD")

	suite.Require().NoError(err, "rate failures must degrade, not error")
	suite.True(result.Degraded)
	suite.Equal("GBP", result.CurrencyCode)
	suite.Equal("£99.99", result.Text)
	suite.EqualValues(1, rates.calls.Load())
}

func (suite *FormatterServiceTestSuite) TestFormat_DefaultsToCurrentSelection() {
	ctx := context.Background()
	rates := &fixedRateProvider{rate: decimal.RequireFromString("0.80")}
	service := suite.newService(rates)

	suite.Require().NoError(suite.selection.Set("EUR"))

	result, err := service.Format(ctx, decimal.RequireFromString("50"), "USD", "")

	suite.Require().NoError(err)
	suite.Equal("EUR", result.CurrencyCode)
	suite.Equal("€40.00", result.Text)
}

func (suite *FormatterServiceTestSuite) TestFormat_UnknownSourceCurrency() {
	ctx := context.Background()
	service := suite.newService(&failingRateProvider{})

	_, err := service.Format(ctx, decimal.RequireFromString("10"), "ZZZ", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *FormatterServiceTestSuite) TestFormat_CatalogNotLoaded() {
	ctx := context.Background()
	suite.reader.err = apperrors.ErrCatalogNotLoaded
	service := suite.newService(&failingRateProvider{})

	_, err := service.Format(ctx, decimal.RequireFromString("10"), "USD", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCatalogNotLoaded)
}

func (suite *FormatterServiceTestSuite) TestConvert_RoundsToTargetDigits() {
	ctx := context.Background()
	rates := &fixedRateProvider{rate: decimal.RequireFromString("0.30775")}
	service := suite.newService(rates)

	result, err := service.Convert(ctx, decimal.RequireFromString("100"), "USD", "KWD")

	suite.Require().NoError(err)
	suite.Equal("KWD", result.CurrencyCode)
	// 30.775 rounds half-to-even at three digits and stays 30.775.
	suite.True(decimal.RequireFromString("30.775").Equal(result.Amount))
}

func (suite *FormatterServiceTestSuite) TestConvert_RateUnavailablePropagates() {
	ctx := context.Background()
	service := suite.newService(&failingRateProvider{})

	_, err := service.Convert(ctx, decimal.RequireFromString("10"), "USD", "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func TestFormatterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FormatterServiceTestSuite))
}

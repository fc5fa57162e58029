package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	portssvc "github.com/fxlens/fxlens_backend/internal/core/ports/services"
	"github.com/fxlens/fxlens_backend/internal/dto"
	"github.com/fxlens/fxlens_backend/internal/handlers"
	"github.com/fxlens/fxlens_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FormatHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockFormatter *MockFormatterService
}

func (suite *FormatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockFormatter = new(MockFormatterService)

	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Catalog:   new(MockCatalogService),
		Search:    new(MockSearchService),
		Formatter: suite.mockFormatter,
		Selection: new(MockSelectionService),
	})
}

func (suite *FormatHandlerTestSuite) serveFormat(query string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/format?"+query, nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decimalArg(want string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return decimal.RequireFromString(want).Equal(d)
	})
}

func (suite *FormatHandlerTestSuite) TestFormatAmount_Success() {
	formatted := &domain.FormattedAmount{
		Text:         "$125.00",
		CurrencyCode: "USD",
		Amount:       decimal.RequireFromString("125.00"),
	}
	suite.mockFormatter.On("Format", mock.Anything, decimalArg("100"), "GBP", "USD").
		Return(formatted, nil).Once()

	w := suite.serveFormat("amount=100&from=GBP&to=USD")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.FormatResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("$125.00", body.Text)
	suite.Equal("USD", body.CurrencyCode)
	suite.False(body.Degraded)

	suite.mockFormatter.AssertExpectations(suite.T())
}

func (suite *FormatHandlerTestSuite) TestFormatAmount_OmittedToUsesSelection() {
	formatted := &domain.FormattedAmount{
		Text:         "€85.00",
		CurrencyCode: "EUR",
		Amount:       decimal.RequireFromString("85.00"),
	}
	suite.mockFormatter.On("Format", mock.Anything, decimalArg("100"), "USD", "").
		Return(formatted, nil).Once()

	w := suite.serveFormat("amount=100&from=USD")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockFormatter.AssertExpectations(suite.T())
}

func (suite *FormatHandlerTestSuite) TestFormatAmount_DegradedResultIsStill200() {
	formatted := &domain.FormattedAmount{
		Text:         "£99.99",
		CurrencyCode: "GBP",
		Amount:       decimal.RequireFromString("99.99"),
		Degraded:     true,
	}
	suite.mockFormatter.On("Format", mock.Anything, decimalArg("99.99"), "GBP", "USD").
		Return(formatted, nil).Once()

	w := suite.serveFormat("amount=99.99&from=GBP&to=USD")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.FormatResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Degraded)
	suite.Equal("GBP", body.CurrencyCode)

	suite.mockFormatter.AssertExpectations(suite.T())
}

func (suite *FormatHandlerTestSuite) TestFormatAmount_MissingAmountReturns400() {
	w := suite.serveFormat("from=GBP&to=USD")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFormatter.AssertNotCalled(suite.T(), "Format")
}

func (suite *FormatHandlerTestSuite) TestFormatAmount_BadAmountReturns400() {
	w := suite.serveFormat("amount=abc&from=GBP&to=USD")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFormatter.AssertNotCalled(suite.T(), "Format")
}

func (suite *FormatHandlerTestSuite) TestFormatAmount_LowercaseCodeReturns400() {
	w := suite.serveFormat("amount=100&from=gbp&to=USD")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFormatter.AssertNotCalled(suite.T(), "Format")
}

func (suite *FormatHandlerTestSuite) TestFormatAmount_UnknownCurrencyReturns404() {
	suite.mockFormatter.On("Format", mock.Anything, decimalArg("100"), "ZZZ", "USD").
		Return(nil, fmt.Errorf("%w: ZZZ", apperrors.ErrUnknownCurrency)).Once()

	w := suite.serveFormat("amount=100&from=ZZZ&to=USD")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockFormatter.AssertExpectations(suite.T())
}

func (suite *FormatHandlerTestSuite) TestFormatAmount_NotLoadedReturns503() {
	suite.mockFormatter.On("Format", mock.Anything, decimalArg("100"), "GBP", "USD").
		Return(nil, apperrors.ErrCatalogNotLoaded).Once()

	w := suite.serveFormat("amount=100&from=GBP&to=USD")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.mockFormatter.AssertExpectations(suite.T())
}

func TestFormatHandler(t *testing.T) {
	suite.Run(t, new(FormatHandlerTestSuite))
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/SscSPs/fx_wallet_backend/internal/dto"
	"github.com/SscSPs/fx_wallet_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockExchangeRateService
}

func (suite *ExchangeRateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidators()
	suite.router = gin.New()
	suite.mockService = new(MockExchangeRateService)
	handlers.RegisterExchangeRateRoutes(suite.router.Group(""), suite.mockService)
}

func (suite *ExchangeRateHandlerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExchangeRateHandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func sampleRates(base string) []domain.ExchangeRate {
	updated := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	return []domain.ExchangeRate{
		{ID: "r1", BaseCurrency: base, TargetCurrency: "GBP", Rate: decimal.RequireFromString("0.85"), LastUpdated: updated},
		{ID: "r2", BaseCurrency: base, TargetCurrency: "USD", Rate: decimal.RequireFromString("1.0812"), LastUpdated: updated},
	}
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRates_DefaultsToEUR() {
	suite.mockService.On("GetRates", mock.Anything, "EUR").Return(sampleRates("EUR"), nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/exchange-rates", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("EUR", resp[0].BaseCurrency)
	suite.Equal("USD", resp[1].TargetCurrency)
	suite.True(resp[1].Rate.Equal(decimal.RequireFromString("1.0812")))
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRates_PassesBase() {
	suite.mockService.On("GetRates", mock.Anything, "usd").Return(sampleRates("USD"), nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/exchange-rates?base=usd", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRates_InvalidBase() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/exchange-rates?base=DOLLARS", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("base must be a 3-letter currency code", suite.errorBody(w))
	suite.mockService.AssertNotCalled(suite.T(), "GetRates", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRates_ErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not configured", apperrors.NewConfigurationError("ExchangeRatesAPI is not configured"), http.StatusInternalServerError, "ExchangeRatesAPI is not configured"},
		{"provider failure", apperrors.NewUpstreamError("Failed to fetch exchange rates: Service Unavailable", nil), http.StatusInternalServerError, "Failed to fetch exchange rates: Service Unavailable"},
		{"validation", apperrors.NewValidationError("invalid base currency"), http.StatusBadRequest, "invalid base currency"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.mockService.On("GetRates", mock.Anything, "GBP").Return(nil, tt.err).Once()

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/exchange-rates?base=GBP", nil)
			suite.router.ServeHTTP(w, req)

			suite.Equal(tt.wantStatus, w.Code)
			suite.Contains(suite.errorBody(w), tt.wantError)
			suite.mockService.AssertExpectations(suite.T())
		})
	}
}

func (suite *ExchangeRateHandlerTestSuite) TestForceRefresh_Success() {
	suite.mockService.On("ForceRefresh", mock.Anything, "USD").Return(sampleRates("USD"), nil).Once()

	body, _ := json.Marshal(map[string]string{"baseCurrency": "USD"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/exchange-rates", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func (suite *ExchangeRateHandlerTestSuite) TestForceRefresh_MissingBase() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/exchange-rates", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("baseCurrency is required", suite.errorBody(w))
	suite.mockService.AssertNotCalled(suite.T(), "ForceRefresh", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateHandlerTestSuite) TestForceRefresh_MalformedJSON() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/exchange-rates", bytes.NewReader([]byte(`{"baseCurrency":`)))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "Invalid request format")
}

func (suite *ExchangeRateHandlerTestSuite) TestGetHistory_Success() {
	r := decimal.RequireFromString("1.08")
	points := []domain.HistoryPoint{
		{Date: "2024-06-14", Label: "Jun 14", Rate: nil},
		{Date: "2024-06-15", Label: "Jun 15", Rate: &r},
	}
	suite.mockService.On("GetHistory", mock.Anything, "USD", 0).Return(points, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/exchange-rates/history?currency=USD", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.HistoryPointResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Nil(resp[0].Rate)
	suite.Equal("Jun 15", resp[1].Label)
	suite.True(resp[1].Rate.Equal(r))
}

func (suite *ExchangeRateHandlerTestSuite) TestGetHistory_MissingCurrency() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/exchange-rates/history", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("currency is required", suite.errorBody(w))
}

func (suite *ExchangeRateHandlerTestSuite) TestGetHistory_DaysOutOfRange() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/exchange-rates/history?currency=USD&days=90", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("days is out of range", suite.errorBody(w))
}

func TestExchangeRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateHandlerTestSuite))
}

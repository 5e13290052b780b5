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
	"github.com/SscSPs/fx_wallet_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WatchlistHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockWatchlistService
	userID      string
	token       string
}

func (suite *WatchlistHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidators()
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))
	suite.mockService = new(MockWatchlistService)
	handlers.RegisterWatchlistRoutes(suite.router.Group("/api/v1"), suite.mockService)

	suite.userID = uuid.NewString()
	token, err := generateTestToken(suite.userID)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *WatchlistHandlerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *WatchlistHandlerTestSuite) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WatchlistHandlerTestSuite) TestListWatchlist_Success() {
	rate := decimal.RequireFromString("0.92")
	updated := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	entries := []domain.WatchlistEntry{
		{WatchlistItem: domain.WatchlistItem{ID: "w1", UserID: suite.userID, CurrencyPair: "USD-EUR"}, Rate: &rate, LastUpdated: &updated},
		{WatchlistItem: domain.WatchlistItem{ID: "w2", UserID: suite.userID, CurrencyPair: "GBP-JPY"}},
	}
	suite.mockService.On("ListWatchlist", mock.Anything, suite.userID, 10).Return(entries, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/watchlist?limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.WatchlistItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("USD-EUR", resp[0].CurrencyPair)
	suite.Require().NotNil(resp[0].Rate)
	suite.True(resp[0].Rate.Equal(rate))
	suite.Nil(resp[1].Rate)
}

func (suite *WatchlistHandlerTestSuite) TestListWatchlist_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/watchlist", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *WatchlistHandlerTestSuite) TestAddToWatchlist_Created() {
	item := &domain.WatchlistItem{ID: "w1", UserID: suite.userID, CurrencyPair: "USD-EUR", CreatedAt: time.Now().UTC()}
	suite.mockService.On("AddToWatchlist", mock.Anything, suite.userID, "usd-eur").Return(item, nil).Once()

	body, _ := json.Marshal(dto.AddWatchlistRequest{CurrencyPair: "usd-eur"})
	w := suite.do(http.MethodPost, "/api/v1/watchlist", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.WatchlistItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD-EUR", resp.CurrencyPair)
}

func (suite *WatchlistHandlerTestSuite) TestAddToWatchlist_Errors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate", apperrors.NewAppError(http.StatusConflict, "currency pair already watched", apperrors.ErrDuplicate), http.StatusConflict},
		{"bad pair", apperrors.NewValidationError("currency pair must look like BASE-TARGET"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.mockService.On("AddToWatchlist", mock.Anything, suite.userID, "USD-EUR").Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/watchlist", []byte(`{"currency_pair":"USD-EUR"}`))

			suite.Equal(tt.wantStatus, w.Code)
			suite.mockService.AssertExpectations(suite.T())
		})
	}
}

func (suite *WatchlistHandlerTestSuite) TestAddToWatchlist_MissingPair() {
	w := suite.do(http.MethodPost, "/api/v1/watchlist", []byte(`{}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "currency_pair is required")
}

func (suite *WatchlistHandlerTestSuite) TestRemoveFromWatchlist() {
	suite.mockService.On("RemoveFromWatchlist", mock.Anything, suite.userID, "USD-EUR").Return(nil).Once()
	suite.mockService.On("RemoveFromWatchlist", mock.Anything, suite.userID, "GBP-JPY").
		Return(apperrors.NewNotFoundError("watchlist item GBP-JPY")).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/watchlist/USD-EUR", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/watchlist/GBP-JPY", nil).Code)
}

func TestWatchlistHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WatchlistHandlerTestSuite))
}

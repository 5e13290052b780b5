package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
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

type WalletHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockWalletService
	userID      string
	token       string
}

func (suite *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidators()
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))
	suite.mockService = new(MockWalletService)
	handlers.RegisterWalletRoutes(suite.router.Group("/api/v1"), suite.mockService)

	suite.userID = uuid.NewString()
	token, err := generateTestToken(suite.userID)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *WalletHandlerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *WalletHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WalletHandlerTestSuite) TestListBalances() {
	balances := []domain.WalletBalance{
		{Currency: "EUR", Balance: decimal.NewFromInt(100)},
		{Currency: "USD", Balance: decimal.RequireFromString("12.50")},
	}
	suite.mockService.On("ListBalances", mock.Anything, suite.userID).Return(balances, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/wallet/balances", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.WalletBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.True(resp[1].Balance.Equal(decimal.RequireFromString("12.5")))
}

func (suite *WalletHandlerTestSuite) TestListBalances_NoWallet() {
	suite.mockService.On("ListBalances", mock.Anything, suite.userID).
		Return(nil, apperrors.NewNotFoundError("wallet not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/wallet/balances", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *WalletHandlerTestSuite) TestListTransactions_PassesLimit() {
	txns := []domain.Transaction{
		{ID: "t1", Type: domain.TransactionSend, SenderID: suite.userID, ReceiverID: "bob", Amount: decimal.NewFromInt(5), Currency: "EUR", CreatedAt: time.Now().UTC()},
	}
	suite.mockService.On("ListTransactions", mock.Anything, suite.userID, 0).Return(txns, nil).Once()
	suite.mockService.On("ListTransactions", mock.Anything, suite.userID, 20).Return([]domain.Transaction{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/wallet/transactions", "")
	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(domain.TransactionSend, resp[0].Type)

	w = suite.do(http.MethodGet, "/api/v1/wallet/transactions?limit=20", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *WalletHandlerTestSuite) TestExchangeCurrency_Success() {
	quote := &domain.ExchangeQuote{
		FromCurrency:    "EUR",
		ToCurrency:      "USD",
		Amount:          decimal.NewFromInt(10),
		Rate:            decimal.RequireFromString("1.25"),
		ConvertedAmount: decimal.RequireFromString("12.5"),
	}
	suite.mockService.On("ExchangeCurrency", mock.Anything, suite.userID, "EUR", "USD", amountArg("10")).Return(quote, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/wallet/exchange", `{"from_currency":"EUR","to_currency":"USD","amount":10}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeQuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.ConvertedAmount.Equal(decimal.RequireFromString("12.5")))
}

func (suite *WalletHandlerTestSuite) TestExchangeCurrency_SameCurrency() {
	w := suite.do(http.MethodPost, "/api/v1/wallet/exchange", `{"from_currency":"EUR","to_currency":"EUR","amount":10}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "to_currency must differ from")
}

func (suite *WalletHandlerTestSuite) TestExchangeCurrency_InsufficientFunds() {
	suite.mockService.On("ExchangeCurrency", mock.Anything, suite.userID, "EUR", "USD", amountArg("1000")).
		Return(nil, fmt.Errorf("EUR balance 10 is below 1000: %w", apperrors.ErrInsufficientFunds)).Once()

	w := suite.do(http.MethodPost, "/api/v1/wallet/exchange", `{"from_currency":"EUR","to_currency":"USD","amount":"1000"}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *WalletHandlerTestSuite) TestTransferMoney() {
	suite.mockService.On("TransferMoney", mock.Anything, suite.userID, "bob", "EUR", amountArg("2.5")).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/wallet/transfer", `{"receiver_id":"bob","currency":"EUR","amount":2.5}`)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *WalletHandlerTestSuite) TestTransferMoney_MissingReceiver() {
	w := suite.do(http.MethodPost, "/api/v1/wallet/transfer", `{"currency":"EUR","amount":2.5}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "receiver_id is required")
}

func (suite *WalletHandlerTestSuite) TestTransferMoney_NotAFriend() {
	suite.mockService.On("TransferMoney", mock.Anything, suite.userID, "stranger", "EUR", amountArg("1")).
		Return(apperrors.NewForbiddenError("money can only be sent to accepted friends")).Once()

	w := suite.do(http.MethodPost, "/api/v1/wallet/transfer", `{"receiver_id":"stranger","currency":"EUR","amount":1}`)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "accepted friends")
}

func TestWalletHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

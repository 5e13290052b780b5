package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet_backend/internal/dto"
	"github.com/SscSPs/fx_wallet_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// RegisterWalletRoutes registers the wallet routes. rg must be authenticated.
func RegisterWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := &walletHandler{walletService: walletService}

	wallet := rg.Group("/wallet")
	{
		wallet.GET("/balances", h.listBalances)
		wallet.GET("/transactions", h.listTransactions)
		wallet.POST("/exchange", h.exchangeCurrency)
		wallet.POST("/transfer", h.transferMoney)
	}
}

// listBalances godoc
// @Summary List wallet balances
// @Tags wallet
// @Produce  json
// @Success 200 {array} dto.WalletBalanceResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /api/v1/wallet/balances [get]
func (h *walletHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balances, err := h.walletService.ListBalances(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWalletBalanceResponse(balances))
}

// listTransactions godoc
// @Summary List wallet transactions
// @Description Movements where the caller is sender or receiver, newest first.
// @Tags wallet
// @Produce  json
// @Param   limit query int false "Maximum number of transactions (default 50)"
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /api/v1/wallet/transactions [get]
func (h *walletHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	txns, err := h.walletService.ListTransactions(c.Request.Context(), userID, q.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// exchangeCurrency godoc
// @Summary Exchange between two currencies
// @Description Quotes the conversion from the stored rate and passes the exchange to the ledger.
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   request body dto.ExchangeCurrencyRequest true "Exchange details"
// @Success 200 {object} dto.ExchangeQuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No rate for the pair"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Security BearerAuth
// @Router /api/v1/wallet/exchange [post]
func (h *walletHandler) exchangeCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req dto.ExchangeCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ExchangeCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	quote, err := h.walletService.ExchangeCurrency(c.Request.Context(), userID, req.FromCurrency, req.ToCurrency, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Exchange failed")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeQuoteResponse(quote))
}

// transferMoney godoc
// @Summary Send money to another user
// @Tags wallet
// @Accept  json
// @Param   request body dto.TransferMoneyRequest true "Transfer details"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Receiver has no wallet"
// @Failure 403 {object} map[string]string "Receiver is not an accepted friend"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Security BearerAuth
// @Router /api/v1/wallet/transfer [post]
func (h *walletHandler) transferMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req dto.TransferMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	if err := h.walletService.TransferMoney(c.Request.Context(), userID, req.ReceiverID, req.Currency, req.Amount); err != nil {
		respondError(c, logger, err, "Transfer failed")
		return
	}
	c.Status(http.StatusNoContent)
}

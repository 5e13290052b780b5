package dto

import (
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeCurrencyRequest converts Amount of FromCurrency into ToCurrency.
// Amount positivity is checked by the service.
type ExchangeCurrencyRequest struct {
	FromCurrency string          `json:"from_currency" binding:"required,currency_code"`
	ToCurrency   string          `json:"to_currency" binding:"required,currency_code,nefield=FromCurrency"`
	Amount       decimal.Decimal `json:"amount"`
}

// TransferMoneyRequest sends Amount of Currency to ReceiverID.
type TransferMoneyRequest struct {
	ReceiverID string          `json:"receiver_id" binding:"required"`
	Currency   string          `json:"currency" binding:"required,currency_code"`
	Amount     decimal.Decimal `json:"amount"`
}

type WalletBalanceResponse struct {
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type TransactionResponse struct {
	ID         string                 `json:"id"`
	Type       domain.TransactionType `json:"type"`
	SenderID   string                 `json:"sender_id"`
	ReceiverID string                 `json:"receiver_id"`
	Amount     decimal.Decimal        `json:"amount"`
	Currency   string                 `json:"currency"`
	CreatedAt  time.Time              `json:"created_at"`
}

type ExchangeQuoteResponse struct {
	FromCurrency    string          `json:"from_currency"`
	ToCurrency      string          `json:"to_currency"`
	Amount          decimal.Decimal `json:"amount"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	RateUpdatedAt   time.Time       `json:"rate_updated_at"`
}

func ToListWalletBalanceResponse(balances []domain.WalletBalance) []WalletBalanceResponse {
	responses := make([]WalletBalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = WalletBalanceResponse{Currency: b.Currency, Balance: b.Balance, UpdatedAt: b.UpdatedAt}
	}
	return responses
}

func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		responses[i] = TransactionResponse{
			ID:         t.ID,
			Type:       t.Type,
			SenderID:   t.SenderID,
			ReceiverID: t.ReceiverID,
			Amount:     t.Amount,
			Currency:   t.Currency,
			CreatedAt:  t.CreatedAt,
		}
	}
	return responses
}

func ToExchangeQuoteResponse(q *domain.ExchangeQuote) ExchangeQuoteResponse {
	return ExchangeQuoteResponse{
		FromCurrency:    q.FromCurrency,
		ToCurrency:      q.ToCurrency,
		Amount:          q.Amount,
		Rate:            q.Rate,
		ConvertedAmount: q.ConvertedAmount,
		RateUpdatedAt:   q.RateUpdatedAt,
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger movement.
type TransactionType string

const (
	TransactionExchange TransactionType = "exchange"
	TransactionSend     TransactionType = "send"
	TransactionReceive  TransactionType = "receive"
)

// Wallet is the ledger container owned by one user.
type Wallet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletBalance is the amount held in one currency.
type WalletBalance struct {
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Transaction is a ledger movement as recorded by the external ledger.
type Transaction struct {
	ID         string          `json:"id"`
	Type       TransactionType `json:"type"`
	SenderID   string          `json:"sender_id"`
	ReceiverID string          `json:"receiver_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ExchangeQuote is what a caller gets back from an exchange: the rate
// re-derived from the rate store at call time and the resulting amount.
type ExchangeQuote struct {
	FromCurrency    string          `json:"from_currency"`
	ToCurrency      string          `json:"to_currency"`
	Amount          decimal.Decimal `json:"amount"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	RateUpdatedAt   time.Time       `json:"rate_updated_at"`
}

// BalanceOf returns the balance held in currency, zero if none.
func BalanceOf(balances []WalletBalance, currency string) decimal.Decimal {
	for _, b := range balances {
		if b.Currency == currency {
			return b.Balance
		}
	}
	return decimal.Zero
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a row of the ledger-owned wallets table.
type Wallet struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// WalletBalance is a row of wallet_balances.
type WalletBalance struct {
	WalletID  string          `db:"wallet_id"`
	Currency  string          `db:"currency"`
	Balance   decimal.Decimal `db:"balance"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Transaction is a row of the ledger-owned transactions table.
type Transaction struct {
	ID         string          `db:"id"`
	Type       string          `db:"type"`
	SenderID   string          `db:"sender_id"`
	ReceiverID string          `db:"receiver_id"`
	Amount     decimal.Decimal `db:"amount"`
	Currency   string          `db:"currency"`
	CreatedAt  time.Time       `db:"created_at"`
}

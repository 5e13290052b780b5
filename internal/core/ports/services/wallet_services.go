package services

import (
	"context"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReaderSvc defines read operations on a user's wallet.
type WalletReaderSvc interface {
	ListBalances(ctx context.Context, userID string) ([]domain.WalletBalance, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

// WalletWriterSvc moves money through the external ledger.
type WalletWriterSvc interface {
	// ExchangeCurrency converts amount of from into to within the user's wallet.
	ExchangeCurrency(ctx context.Context, userID, from, to string, amount decimal.Decimal) (*domain.ExchangeQuote, error)

	// TransferMoney sends amount of currency to another user's wallet.
	TransferMoney(ctx context.Context, userID, receiverID, currency string, amount decimal.Decimal) error
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}

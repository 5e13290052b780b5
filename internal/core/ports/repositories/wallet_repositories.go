package repositories

import (
	"context"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReader reads ledger-owned wallet data.
type WalletReader interface {
	// FindWalletByUser returns the user's wallet, or apperrors.ErrNotFound.
	FindWalletByUser(ctx context.Context, userID string) (*domain.Wallet, error)

	// ListBalances returns every balance of a wallet.
	ListBalances(ctx context.Context, walletID string) ([]domain.WalletBalance, error)

	// ListTransactions returns movements where userID is sender or receiver, newest first.
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

// LedgerProcedures invokes the external ledger's stored procedures. Their
// transactional behaviour (overdraft checks, rate locking) belongs to the
// ledger and is not assumed here.
type LedgerProcedures interface {
	// ExchangeCurrency calls exchange_currency(user_id, from_currency, to_currency, amount).
	ExchangeCurrency(ctx context.Context, userID, fromCurrency, toCurrency string, amount decimal.Decimal) error

	// TransferMoney calls transfer_money(p_from_wallet_id, p_to_wallet_id, p_currency, p_amount).
	TransferMoney(ctx context.Context, fromWalletID, toWalletID, currency string, amount decimal.Decimal) error
}

// WalletRepositoryFacade combines wallet reads and ledger calls.
type WalletRepositoryFacade interface {
	WalletReader
	LedgerProcedures
}

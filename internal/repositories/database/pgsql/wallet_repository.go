package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	"github.com/SscSPs/fx_wallet_backend/internal/models"
	"github.com/SscSPs/fx_wallet_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxWalletRepository reads ledger tables and calls the ledger's procedures.
// It never writes wallet rows itself.
type PgxWalletRepository struct {
	BaseRepository
}

func newPgxWalletRepository(pool *pgxpool.Pool) *PgxWalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// FindWalletByUser retrieves the wallet owned by userID.
func (r *PgxWalletRepository) FindWalletByUser(ctx context.Context, userID string) (*domain.Wallet, error) {
	var m models.Wallet
	err := r.Pool.QueryRow(ctx,
		`SELECT id, user_id, created_at FROM wallets WHERE user_id = $1`, userID,
	).Scan(&m.ID, &m.UserID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("wallet not found for user " + userID)
		}
		return nil, apperrors.NewStoreError("failed to find wallet", err)
	}
	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// ListBalances returns the balances of walletID ordered by currency.
func (r *PgxWalletRepository) ListBalances(ctx context.Context, walletID string) ([]domain.WalletBalance, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT wallet_id, currency, balance, updated_at
		FROM wallet_balances
		WHERE wallet_id = $1
		ORDER BY currency`, walletID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query balances", err)
	}
	defer rows.Close()

	balances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WalletBalance, error) {
		var m models.WalletBalance
		err := row.Scan(&m.WalletID, &m.Currency, &m.Balance, &m.UpdatedAt)
		return mapping.ToDomainWalletBalance(m), err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan balances", err)
	}
	return balances, nil
}

// ListTransactions returns movements involving userID, newest first.
func (r *PgxWalletRepository) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT id, type, sender_id, receiver_id, amount, currency, created_at
		FROM transactions
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query transactions", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var m models.Transaction
		err := row.Scan(&m.ID, &m.Type, &m.SenderID, &m.ReceiverID, &m.Amount, &m.Currency, &m.CreatedAt)
		return mapping.ToDomainTransaction(m), err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan transactions", err)
	}
	return txns, nil
}

// ExchangeCurrency invokes the ledger's exchange_currency procedure.
func (r *PgxWalletRepository) ExchangeCurrency(ctx context.Context, userID, fromCurrency, toCurrency string, amount decimal.Decimal) error {
	if _, err := r.Pool.Exec(ctx, `SELECT exchange_currency($1, $2, $3, $4)`, userID, fromCurrency, toCurrency, amount); err != nil {
		return apperrors.NewStoreError("exchange_currency failed", err)
	}
	return nil
}

// TransferMoney invokes the ledger's transfer_money procedure.
func (r *PgxWalletRepository) TransferMoney(ctx context.Context, fromWalletID, toWalletID, currency string, amount decimal.Decimal) error {
	if _, err := r.Pool.Exec(ctx, `SELECT transfer_money($1, $2, $3, $4)`, fromWalletID, toWalletID, currency, amount); err != nil {
		return apperrors.NewStoreError("transfer_money failed", err)
	}
	return nil
}

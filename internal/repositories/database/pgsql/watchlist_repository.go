package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	"github.com/SscSPs/fx_wallet_backend/internal/models"
	"github.com/SscSPs/fx_wallet_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWatchlistRepository struct {
	BaseRepository
}

func newPgxWatchlistRepository(pool *pgxpool.Pool) *PgxWatchlistRepository {
	return &PgxWatchlistRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WatchlistRepositoryFacade = (*PgxWatchlistRepository)(nil)

// ListWatchlist returns a user's items newest first.
func (r *PgxWatchlistRepository) ListWatchlist(ctx context.Context, userID string, limit int) ([]domain.WatchlistItem, error) {
	query := `
		SELECT id, user_id, currency_pair, created_at
		FROM watchlist
		WHERE user_id = $1
		ORDER BY created_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query watchlist", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WatchlistItem, error) {
		var m models.WatchlistItem
		err := row.Scan(&m.ID, &m.UserID, &m.CurrencyPair, &m.CreatedAt)
		return mapping.ToDomainWatchlistItem(m), err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan watchlist", err)
	}
	return items, nil
}

// AddWatchlistItem inserts an item; the (user_id, currency_pair) constraint reports duplicates.
func (r *PgxWatchlistRepository) AddWatchlistItem(ctx context.Context, item domain.WatchlistItem) error {
	m := mapping.ToModelWatchlistItem(item)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO watchlist (id, user_id, currency_pair, created_at) VALUES ($1, $2, $3, $4)`,
		m.ID, m.UserID, m.CurrencyPair, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s is already on the watchlist", apperrors.ErrDuplicate, m.CurrencyPair)
		}
		return apperrors.NewStoreError("failed to add watchlist item", err)
	}
	return nil
}

// RemoveWatchlistItem deletes a user's pair.
func (r *PgxWatchlistRepository) RemoveWatchlistItem(ctx context.Context, userID, currencyPair string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM watchlist WHERE user_id = $1 AND currency_pair = $2`, userID, currencyPair)
	if err != nil {
		return apperrors.NewStoreError("failed to remove watchlist item", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(currencyPair + " is not on the watchlist")
	}
	return nil
}

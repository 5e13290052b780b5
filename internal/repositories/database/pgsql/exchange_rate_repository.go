package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	"github.com/SscSPs/fx_wallet_backend/internal/models"
	"github.com/SscSPs/fx_wallet_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const selectRateColumns = `SELECT id, base_currency, target_currency, rate, last_updated FROM exchange_rates`

// upsertRateQuery keeps the row id on conflict; only rate and last_updated move.
const upsertRateQuery = `
	INSERT INTO exchange_rates (id, base_currency, target_currency, rate, last_updated)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (base_currency, target_currency) DO UPDATE SET
		rate = EXCLUDED.rate,
		last_updated = EXCLUDED.last_updated;
`

// FindRatesByBase returns every stored rate for baseCurrency.
func (r *PgxExchangeRateRepository) FindRatesByBase(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	return r.queryRates(ctx, selectRateColumns+` WHERE base_currency = $1 ORDER BY target_currency`, baseCurrency)
}

// FindRate retrieves the stored rate for one pair.
func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, selectRateColumns+` WHERE base_currency = $1 AND target_currency = $2`,
		baseCurrency, targetCurrency,
	).Scan(&m.ID, &m.BaseCurrency, &m.TargetCurrency, &m.Rate, &m.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no exchange rate stored for " + baseCurrency + " to " + targetCurrency)
		}
		return nil, apperrors.NewStoreError("failed to find exchange rate", err)
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// ListRates returns every stored rate ordered by pair.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	return r.queryRates(ctx, selectRateColumns+` ORDER BY base_currency, target_currency`)
}

func (r *PgxExchangeRateRepository) queryRates(ctx context.Context, query string, args ...any) ([]domain.ExchangeRate, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query exchange rates", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var m models.ExchangeRate
		err := row.Scan(&m.ID, &m.BaseCurrency, &m.TargetCurrency, &m.Rate, &m.LastUpdated)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan exchange rates", err)
	}
	return mapping.ToDomainExchangeRates(modelRates), nil
}

// UpsertRates writes the whole batch in one transaction.
func (r *PgxExchangeRateRepository) UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		batch.Queue(upsertRateQuery, m.ID, m.BaseCurrency, m.TargetCurrency, m.Rate, m.LastUpdated)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("upsert %s/%s: %w", rates[i].BaseCurrency, rates[i].TargetCurrency, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close upsert batch: %w", err)
	}
	if batchErr != nil {
		return apperrors.NewStoreError("failed to upsert exchange rates", batchErr)
	}

	return r.Commit(ctx, tx)
}

package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/SscSPs/fx_wallet_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(base, target, value string, at time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           decimal.RequireFromString(value),
		LastUpdated:    at,
	}
}

func TestUpsertRates_ReplacesWithoutDuplicating(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	day1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.Add(25 * time.Hour)

	require.NoError(t, repo.UpsertRates(ctx, []domain.ExchangeRate{
		rate("USD", "EUR", "0.91", day1),
		rate("USD", "JPY", "150.1", day1),
	}))
	before, err := repo.FindRatesByBase(ctx, "USD")
	require.NoError(t, err)
	require.Len(t, before, 2)

	// Mixed batch: one existing pair, one new pair for another base.
	require.NoError(t, repo.UpsertRates(ctx, []domain.ExchangeRate{
		rate("USD", "EUR", "0.93", day2),
		rate("GBP", "EUR", "1.17", day2),
	}))

	after, err := repo.FindRatesByBase(ctx, "USD")
	require.NoError(t, err)
	assert.Len(t, after, 2)

	eur, ok := domain.FindRate(after, "USD", "EUR")
	require.True(t, ok)
	assert.Equal(t, "0.93", eur.Rate.String())
	assert.Equal(t, day2, eur.LastUpdated)

	original, _ := domain.FindRate(before, "USD", "EUR")
	assert.Equal(t, original.ID, eur.ID, "row identity is kept on conflict")
	assert.Equal(t, 3, repo.Len())
}

func TestUpsertRates_FailureLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	now := time.Now().UTC()
	require.NoError(t, repo.UpsertRates(ctx, []domain.ExchangeRate{rate("JPY", "USD", "0.0067", now)}))

	repo.FailWrites = errors.New("disk full")
	err := repo.UpsertRates(ctx, []domain.ExchangeRate{
		rate("JPY", "USD", "0.0070", now),
		rate("JPY", "EUR", "0.0061", now),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStore)
	stored, _ := repo.FindRatesByBase(ctx, "JPY")
	require.Len(t, stored, 1)
	assert.Equal(t, "0.0067", stored[0].Rate.String())
}

func TestFindRate_NotFound(t *testing.T) {
	repo := memory.NewExchangeRateRepository()
	_, err := repo.FindRate(context.Background(), "USD", "EUR")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

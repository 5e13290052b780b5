package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/adapters/realtime"
	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/SscSPs/fx_wallet_backend/internal/core/services"
	"github.com/SscSPs/fx_wallet_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchlistService_AddListRemove(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	broker := realtime.NewBroker()
	var changes []domain.TableChange
	_, _ = broker.Subscribe(domain.TableWatchlist, func(c domain.TableChange) { changes = append(changes, c) })

	updated := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repos.ExchangeRates.UpsertRates(ctx, []domain.ExchangeRate{
		{BaseCurrency: "USD", TargetCurrency: "EUR", Rate: decimal.RequireFromString("0.92"), LastUpdated: updated},
	}))

	svc := services.NewWatchlistService(repos.Watchlist, repos.ExchangeRates, broker)

	item, err := svc.AddToWatchlist(ctx, "user-1", " usd-eur ")
	require.NoError(t, err)
	assert.Equal(t, "USD-EUR", item.CurrencyPair)
	assert.NotEmpty(t, item.ID)

	_, err = svc.AddToWatchlist(ctx, "user-1", "USD-EUR")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = svc.AddToWatchlist(ctx, "user-1", "GBP-JPY")
	require.NoError(t, err)

	entries, err := svc.ListWatchlist(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var usdEur, gbpJpy domain.WatchlistEntry
	for _, e := range entries {
		switch e.CurrencyPair {
		case "USD-EUR":
			usdEur = e
		case "GBP-JPY":
			gbpJpy = e
		}
	}
	require.NotNil(t, usdEur.Rate)
	assert.Equal(t, "0.92", usdEur.Rate.String())
	assert.Equal(t, updated, *usdEur.LastUpdated)
	assert.Nil(t, gbpJpy.Rate, "no stored rate for the pair")

	require.NoError(t, svc.RemoveFromWatchlist(ctx, "user-1", "usd-eur"))
	assert.ErrorIs(t, svc.RemoveFromWatchlist(ctx, "user-1", "USD-EUR"), apperrors.ErrNotFound)

	require.Len(t, changes, 3)
	assert.Equal(t, domain.ChangeDelete, changes[2].Operation)
	assert.Equal(t, "USD-EUR", changes[2].Key)
	assert.Equal(t, []string{"user-1"}, changes[2].Audience)
	assert.True(t, changes[2].VisibleTo("user-1"))
	assert.False(t, changes[2].VisibleTo("user-2"))
}

func TestWatchlistService_Validation(t *testing.T) {
	repos := memory.NewRepositories()
	svc := services.NewWatchlistService(repos.Watchlist, repos.ExchangeRates, nil)
	ctx := context.Background()

	_, err := svc.AddToWatchlist(ctx, "user-1", "USDEUR")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.AddToWatchlist(ctx, "user-1", "EUR-EUR")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.AddToWatchlist(ctx, "", "USD-EUR")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	entries, err := svc.ListWatchlist(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

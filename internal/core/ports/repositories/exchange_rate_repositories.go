package repositories

import (
	"context"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRatesByBase returns every stored rate quoted against baseCurrency, in no particular order.
	FindRatesByBase(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error)

	// FindRate returns the stored rate for one pair, or apperrors.ErrNotFound.
	FindRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error)

	// ListRates returns every stored rate.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// UpsertRates inserts or replaces rows keyed on (base_currency, target_currency).
	// Existing rows keep their identity; rate and last_updated are replaced.
	// The batch is applied all-or-nothing.
	UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

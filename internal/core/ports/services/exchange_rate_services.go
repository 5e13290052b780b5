package services

import (
	"context"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRates returns the rates for baseCurrency, refreshing them from the
	// provider first when none are stored or the stored set is stale.
	GetRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error)

	// GetHistory returns one point per calendar day for the last days days,
	// oldest first, ending today. days <= 0 uses the configured default.
	GetHistory(ctx context.Context, currency string, days int) ([]domain.HistoryPoint, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// ForceRefresh always fetches from the provider and upserts the result.
	ForceRefresh(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

package gateways

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateProvider is the upstream exchange-rate API.
type RateProvider interface {
	// Configured reports whether the provider credential is present. Callers
	// check it before any network call.
	Configured() bool

	// LatestRates returns target -> rate for base.
	LatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error)

	// HistoricalRates returns symbol -> rate for base on date. Symbols the
	// provider has no value for are absent from the map.
	HistoricalRates(ctx context.Context, date time.Time, baseCurrency string, symbols ...string) (map[string]decimal.Decimal, error)
}

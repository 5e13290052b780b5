package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
	configured bool
}

func newMockProvider() *MockRateProvider {
	return &MockRateProvider{configured: true}
}

func (m *MockRateProvider) Configured() bool {
	return m.configured
}

func (m *MockRateProvider) LatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// HistoricalRates accepts either a fixed map or a func(date) map as the first return value.
func (m *MockRateProvider) HistoricalRates(ctx context.Context, date time.Time, baseCurrency string, symbols ...string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, date, baseCurrency, symbols)
	switch v := args.Get(0).(type) {
	case func(time.Time) map[string]decimal.Decimal:
		return v(date), args.Error(1)
	case map[string]decimal.Decimal:
		return v, args.Error(1)
	default:
		return nil, args.Error(1)
	}
}

func decimals(kv ...string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = decimal.RequireFromString(kv[i+1])
	}
	return out
}

// clock is a settable test clock.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

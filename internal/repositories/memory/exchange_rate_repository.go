// Package memory holds process-local repository implementations used in tests
// and when the service runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type pairKey struct {
	base, target string
}

// ExchangeRateRepository is an in-memory rate store keyed on the currency pair.
type ExchangeRateRepository struct {
	mu    sync.RWMutex
	rates map[pairKey]domain.ExchangeRate

	// FailWrites makes UpsertRates fail without touching the data. Tests only.
	FailWrites error
}

// NewExchangeRateRepository creates an empty store.
func NewExchangeRateRepository() *ExchangeRateRepository {
	return &ExchangeRateRepository{rates: make(map[pairKey]domain.ExchangeRate)}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)

func (r *ExchangeRateRepository) FindRatesByBase(_ context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ExchangeRate, 0)
	for k, v := range r.rates {
		if k.base == baseCurrency {
			out = append(out, v)
		}
	}
	sortRates(out)
	return out, nil
}

func (r *ExchangeRateRepository) FindRate(_ context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rate, ok := r.rates[pairKey{baseCurrency, targetCurrency}]
	if !ok {
		return nil, apperrors.NewNotFoundError("no exchange rate stored for " + baseCurrency + " to " + targetCurrency)
	}
	return &rate, nil
}

func (r *ExchangeRateRepository) ListRates(_ context.Context) ([]domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ExchangeRate, 0, len(r.rates))
	for _, v := range r.rates {
		out = append(out, v)
	}
	sortRates(out)
	return out, nil
}

// UpsertRates applies the batch under one lock, so readers see all of it or none.
func (r *ExchangeRateRepository) UpsertRates(_ context.Context, rates []domain.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWrites != nil {
		return apperrors.NewStoreError("failed to upsert exchange rates", r.FailWrites)
	}
	for _, rate := range rates {
		k := pairKey{rate.BaseCurrency, rate.TargetCurrency}
		if existing, ok := r.rates[k]; ok {
			rate.ID = existing.ID
		} else if rate.ID == "" {
			rate.ID = uuid.NewString()
		}
		r.rates[k] = rate
	}
	return nil
}

// Len returns the number of stored pairs.
func (r *ExchangeRateRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rates)
}

func sortRates(rates []domain.ExchangeRate) {
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].BaseCurrency != rates[j].BaseCurrency {
			return rates[i].BaseCurrency < rates[j].BaseCurrency
		}
		return rates[i].TargetCurrency < rates[j].TargetCurrency
	})
}

package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
)

// WatchlistRepository is an in-memory watchlist store.
type WatchlistRepository struct {
	mu    sync.RWMutex
	items []domain.WatchlistItem
}

func NewWatchlistRepository() *WatchlistRepository {
	return &WatchlistRepository{}
}

var _ portsrepo.WatchlistRepositoryFacade = (*WatchlistRepository)(nil)

func (r *WatchlistRepository) ListWatchlist(_ context.Context, userID string, limit int) ([]domain.WatchlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.WatchlistItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *WatchlistRepository) AddWatchlistItem(_ context.Context, item domain.WatchlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.UserID == item.UserID && existing.CurrencyPair == item.CurrencyPair {
			return fmt.Errorf("%w: %s is already on the watchlist", apperrors.ErrDuplicate, item.CurrencyPair)
		}
	}
	r.items = append(r.items, item)
	return nil
}

func (r *WatchlistRepository) RemoveWatchlistItem(_ context.Context, userID, currencyPair string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.items {
		if existing.UserID == userID && existing.CurrencyPair == currencyPair {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError(currencyPair + " is not on the watchlist")
}

package services

import (
	"context"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
)

// WatchlistSvcFacade manages the currency pairs a user follows.
type WatchlistSvcFacade interface {
	// ListWatchlist returns the user's pairs joined with stored rates, newest first.
	ListWatchlist(ctx context.Context, userID string, limit int) ([]domain.WatchlistEntry, error)

	// AddToWatchlist follows a "BASE-TARGET" pair.
	AddToWatchlist(ctx context.Context, userID, currencyPair string) (*domain.WatchlistItem, error)

	// RemoveFromWatchlist stops following a pair.
	RemoveFromWatchlist(ctx context.Context, userID, currencyPair string) error
}

package repositories

import (
	"context"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
)

// WatchlistReader defines read operations for watchlist data
type WatchlistReader interface {
	// ListWatchlist returns a user's items newest first. limit <= 0 means no limit.
	ListWatchlist(ctx context.Context, userID string, limit int) ([]domain.WatchlistItem, error)
}

// WatchlistWriter defines write operations for watchlist data
type WatchlistWriter interface {
	// AddWatchlistItem inserts an item, or returns apperrors.ErrDuplicate.
	AddWatchlistItem(ctx context.Context, item domain.WatchlistItem) error

	// RemoveWatchlistItem deletes a user's pair, or returns apperrors.ErrNotFound.
	RemoveWatchlistItem(ctx context.Context, userID, currencyPair string) error
}

// WatchlistRepositoryFacade combines all watchlist-related repository interfaces
type WatchlistRepositoryFacade interface {
	WatchlistReader
	WatchlistWriter
}

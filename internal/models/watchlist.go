package models

import "time"

// WatchlistItem is a row of the watchlist table.
type WatchlistItem struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	CurrencyPair string    `db:"currency_pair"`
	CreatedAt    time.Time `db:"created_at"`
}

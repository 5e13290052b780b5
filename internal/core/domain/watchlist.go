package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PairSeparator joins base and target in a stored currency pair ("USD-EUR").
const PairSeparator = "-"

// WatchlistItem is a currency pair a user follows on the dashboard.
type WatchlistItem struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CurrencyPair string    `json:"currency_pair"`
	CreatedAt    time.Time `json:"created_at"`
}

// WatchlistEntry is a watchlist item joined with the stored rate for its pair.
type WatchlistEntry struct {
	WatchlistItem
	Rate        *decimal.Decimal `json:"rate"`
	LastUpdated *time.Time       `json:"last_updated"`
}

// ParseCurrencyPair splits and normalizes "BASE-TARGET".
func ParseCurrencyPair(pair string) (base, target string, err error) {
	parts := strings.Split(strings.TrimSpace(pair), PairSeparator)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("currency pair %q must look like BASE%sTARGET", pair, PairSeparator)
	}
	base = NormalizeCurrencyCode(parts[0])
	target = NormalizeCurrencyCode(parts[1])
	if !IsCurrencyCode(base) || !IsCurrencyCode(target) {
		return "", "", fmt.Errorf("currency pair %q must use 3-letter codes", pair)
	}
	if base == target {
		return "", "", fmt.Errorf("currency pair %q must use two different currencies", pair)
	}
	return base, target, nil
}

// FormatCurrencyPair builds the stored pair representation.
func FormatCurrencyPair(base, target string) string {
	return NormalizeCurrencyCode(base) + PairSeparator + NormalizeCurrencyCode(target)
}

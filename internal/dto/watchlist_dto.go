package dto

import (
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddWatchlistRequest follows a currency pair such as "USD-EUR".
type AddWatchlistRequest struct {
	CurrencyPair string `json:"currency_pair" binding:"required"`
}

// ListQuery is the optional limit accepted by list endpoints.
type ListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

type WatchlistItemResponse struct {
	ID           string           `json:"id"`
	CurrencyPair string           `json:"currency_pair"`
	CreatedAt    time.Time        `json:"created_at"`
	Rate         *decimal.Decimal `json:"rate"`
	LastUpdated  *time.Time       `json:"last_updated"`
}

func ToWatchlistItemResponse(item domain.WatchlistItem) WatchlistItemResponse {
	return WatchlistItemResponse{
		ID:           item.ID,
		CurrencyPair: item.CurrencyPair,
		CreatedAt:    item.CreatedAt,
	}
}

func ToListWatchlistResponse(entries []domain.WatchlistEntry) []WatchlistItemResponse {
	responses := make([]WatchlistItemResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToWatchlistItemResponse(e.WatchlistItem)
		responses[i].Rate = e.Rate
		responses[i].LastUpdated = e.LastUpdated
	}
	return responses
}

package mapping

import (
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/SscSPs/fx_wallet_backend/internal/models"
)

func ToModelWatchlistItem(d domain.WatchlistItem) models.WatchlistItem {
	return models.WatchlistItem{
		ID:           d.ID,
		UserID:       d.UserID,
		CurrencyPair: d.CurrencyPair,
		CreatedAt:    d.CreatedAt,
	}
}

func ToDomainWatchlistItem(m models.WatchlistItem) domain.WatchlistItem {
	return domain.WatchlistItem{
		ID:           m.ID,
		UserID:       m.UserID,
		CurrencyPair: m.CurrencyPair,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsgw "github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type watchlistService struct {
	BaseService
	watchlistRepo portsrepo.WatchlistRepositoryFacade
	rateRepo      portsrepo.ExchangeRateReader
}

// NewWatchlistService creates the watchlist service. events may be nil.
func NewWatchlistService(watchlistRepo portsrepo.WatchlistRepositoryFacade, rateRepo portsrepo.ExchangeRateReader, events portsgw.EventSource) portssvc.WatchlistSvcFacade {
	return &watchlistService{
		BaseService:   BaseService{Events: events},
		watchlistRepo: watchlistRepo,
		rateRepo:      rateRepo,
	}
}

var _ portssvc.WatchlistSvcFacade = (*watchlistService)(nil)

func (s *watchlistService) ListWatchlist(ctx context.Context, userID string, limit int) ([]domain.WatchlistEntry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	items, err := s.watchlistRepo.ListWatchlist(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list watchlist", slog.String("user_id", userID))
		return nil, asStoreError("failed to list watchlist", err)
	}
	if len(items) == 0 {
		return []domain.WatchlistEntry{}, nil
	}

	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rates for watchlist", slog.String("user_id", userID))
		return nil, asStoreError("failed to list exchange rates", err)
	}
	byPair := make(map[string]domain.ExchangeRate, len(rates))
	for _, r := range rates {
		byPair[domain.FormatCurrencyPair(r.BaseCurrency, r.TargetCurrency)] = r
	}

	entries := make([]domain.WatchlistEntry, 0, len(items))
	for _, item := range items {
		entry := domain.WatchlistEntry{WatchlistItem: item}
		if r, ok := byPair[item.CurrencyPair]; ok {
			rate, updated := r.Rate, r.LastUpdated
			entry.Rate = &rate
			entry.LastUpdated = &updated
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *watchlistService) AddToWatchlist(ctx context.Context, userID, currencyPair string) (*domain.WatchlistItem, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	base, target, err := domain.ParseCurrencyPair(currencyPair)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	item := domain.WatchlistItem{
		ID:           uuid.NewString(),
		UserID:       userID,
		CurrencyPair: domain.FormatCurrencyPair(base, target),
		CreatedAt:    s.CurrentTime(),
	}
	if err := s.watchlistRepo.AddWatchlistItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to add watchlist item", slog.String("user_id", userID), slog.String("pair", item.CurrencyPair))
		return nil, err
	}

	s.LogInfo(ctx, "Watchlist item added", slog.String("user_id", userID), slog.String("pair", item.CurrencyPair))
	s.PublishChange(ctx, domain.TableWatchlist, domain.ChangeInsert, item.CurrencyPair, userID)
	return &item, nil
}

func (s *watchlistService) RemoveFromWatchlist(ctx context.Context, userID, currencyPair string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	base, target, err := domain.ParseCurrencyPair(currencyPair)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	pair := domain.FormatCurrencyPair(base, target)

	if err := s.watchlistRepo.RemoveWatchlistItem(ctx, userID, pair); err != nil {
		s.LogError(ctx, err, "Failed to remove watchlist item", slog.String("user_id", userID), slog.String("pair", pair))
		return err
	}

	s.PublishChange(ctx, domain.TableWatchlist, domain.ChangeDelete, pair, userID)
	return nil
}

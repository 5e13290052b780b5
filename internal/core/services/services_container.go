package services

import (
	portsgw "github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// events may be nil, in which case no change notifications are published.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider portsgw.RateProvider, events portsgw.EventSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.ExchangeRate = NewExchangeRateService(
		repos.ExchangeRateRepo,
		provider,
		WithRateEvents(events),
		WithRateTTL(cfg.RateTTL),
		WithHistoryDefaults(cfg.HistoryDays, cfg.HistoryBase),
	)
	container.Watchlist = NewWatchlistService(repos.WatchlistRepo, repos.ExchangeRateRepo, events)
	container.Wallet = NewWalletService(repos.WalletRepo, repos.ExchangeRateRepo, repos.FriendRepo)
	container.Friend = NewFriendService(repos.FriendRepo, repos.ProfileRepo, events)
	container.Profile = NewProfileService(repos.ProfileRepo)

	return container
}

package memory

import portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"

// Repositories bundles the concrete in-memory stores so callers can seed them.
type Repositories struct {
	ExchangeRates *ExchangeRateRepository
	Watchlist     *WatchlistRepository
	Wallets       *WalletRepository
	Friends       *FriendRepository
	Profiles      *ProfileRepository
}

func NewRepositories() *Repositories {
	profiles := NewProfileRepository()
	return &Repositories{
		ExchangeRates: NewExchangeRateRepository(),
		Watchlist:     NewWatchlistRepository(),
		Wallets:       NewWalletRepository(),
		Friends:       NewFriendRepository(profiles),
		Profiles:      profiles,
	}
}

// Provider exposes the stores through the repository ports.
func (r *Repositories) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: r.ExchangeRates,
		WatchlistRepo:    r.Watchlist,
		WalletRepo:       r.Wallets,
		FriendRepo:       r.Friends,
		ProfileRepo:      r.Profiles,
	}
}

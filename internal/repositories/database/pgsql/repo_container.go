package pgsql

import (
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		WatchlistRepo:    newPgxWatchlistRepository(dbPool),
		WalletRepo:       newPgxWalletRepository(dbPool),
		FriendRepo:       newPgxFriendRepository(dbPool),
		ProfileRepo:      newPgxProfileRepository(dbPool),
	}
}

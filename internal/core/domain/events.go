package domain

import (
	"slices"
	"time"
)

// Tables whose changes are announced on the event source.
const (
	TableExchangeRates  = "exchange_rates"
	TableWatchlist      = "watchlist"
	TableTransactions   = "transactions"
	TableWalletBalances = "wallet_balances"
	TableFriendRequests = "friend_requests"
)

// userScopedTables hold per-user rows. Their changes only reach the users
// named in TableChange.Audience.
var userScopedTables = []string{
	TableWatchlist,
	TableTransactions,
	TableWalletBalances,
	TableFriendRequests,
}

// IsUserScoped reports whether changes to table are private to their audience.
func IsUserScoped(table string) bool {
	return slices.Contains(userScopedTables, table)
}

// ChangeOperation names the kind of write that produced a TableChange.
type ChangeOperation string

const (
	ChangeInsert ChangeOperation = "INSERT"
	ChangeUpdate ChangeOperation = "UPDATE"
	ChangeDelete ChangeOperation = "DELETE"
	ChangeUpsert ChangeOperation = "UPSERT"
)

// TableChange tells subscribers that rows of Table changed and should be re-fetched.
// Key is optional and narrows the change (e.g. a base currency). Audience
// lists the user ids allowed to see a change to a user-scoped table.
type TableChange struct {
	Table      string          `json:"table"`
	Operation  ChangeOperation `json:"operation"`
	Key        string          `json:"key,omitempty"`
	Audience   []string        `json:"audience,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// VisibleTo reports whether userID may receive the change. Changes to
// user-scoped tables without an audience reach nobody.
func (c TableChange) VisibleTo(userID string) bool {
	if !IsUserScoped(c.Table) {
		return true
	}
	return userID != "" && slices.Contains(c.Audience, userID)
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerCall records one invocation of a ledger procedure.
type LedgerCall struct {
	Procedure string
	Args      []string
	Amount    decimal.Decimal
}

// WalletRepository serves wallet reads from memory and records ledger calls
// instead of moving money. The ledger's own semantics are external, so this
// stand-in does not emulate them.
type WalletRepository struct {
	mu           sync.RWMutex
	wallets      map[string]domain.Wallet // by user id
	balances     map[string][]domain.WalletBalance
	transactions []domain.Transaction
	calls        []LedgerCall

	// LedgerErr, when set, is returned by every procedure call.
	LedgerErr error
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		wallets:  make(map[string]domain.Wallet),
		balances: make(map[string][]domain.WalletBalance),
	}
}

var _ portsrepo.WalletRepositoryFacade = (*WalletRepository)(nil)

// SeedWallet creates a wallet for userID holding balances. It returns the wallet id.
func (r *WalletRepository) SeedWallet(userID string, balances map[string]decimal.Decimal) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := domain.Wallet{ID: uuid.NewString(), UserID: userID, CreatedAt: time.Now().UTC()}
	r.wallets[userID] = w
	list := make([]domain.WalletBalance, 0, len(balances))
	for cur, amt := range balances {
		list = append(list, domain.WalletBalance{Currency: cur, Balance: amt, UpdatedAt: w.CreatedAt})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Currency < list[j].Currency })
	r.balances[w.ID] = list
	return w.ID
}

// SeedTransaction appends a ledger movement.
func (r *WalletRepository) SeedTransaction(t domain.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, t)
}

// Calls returns the ledger procedures invoked so far.
func (r *WalletRepository) Calls() []LedgerCall {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]LedgerCall(nil), r.calls...)
}

func (r *WalletRepository) FindWalletByUser(_ context.Context, userID string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("wallet not found for user " + userID)
	}
	return &w, nil
}

func (r *WalletRepository) ListBalances(_ context.Context, walletID string) ([]domain.WalletBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.WalletBalance{}, r.balances[walletID]...), nil
}

func (r *WalletRepository) ListTransactions(_ context.Context, userID string, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, t := range r.transactions {
		if t.SenderID == userID || t.ReceiverID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *WalletRepository) ExchangeCurrency(_ context.Context, userID, fromCurrency, toCurrency string, amount decimal.Decimal) error {
	return r.record(LedgerCall{Procedure: "exchange_currency", Args: []string{userID, fromCurrency, toCurrency}, Amount: amount})
}

func (r *WalletRepository) TransferMoney(_ context.Context, fromWalletID, toWalletID, currency string, amount decimal.Decimal) error {
	return r.record(LedgerCall{Procedure: "transfer_money", Args: []string{fromWalletID, toWalletID, currency}, Amount: amount})
}

func (r *WalletRepository) record(call LedgerCall) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.LedgerErr != nil {
		return apperrors.NewStoreError(call.Procedure+" failed", r.LedgerErr)
	}
	r.calls = append(r.calls, call)
	return nil
}

package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) GetHistory(ctx context.Context, currency string, days int) ([]domain.HistoryPoint, error) {
	args := m.Called(ctx, currency, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryPoint), args.Error(1)
}
func (m *MockExchangeRateService) ForceRefresh(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock WatchlistService ---
type MockWatchlistService struct {
	mock.Mock
}

func (m *MockWatchlistService) ListWatchlist(ctx context.Context, userID string, limit int) ([]domain.WatchlistEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WatchlistEntry), args.Error(1)
}
func (m *MockWatchlistService) AddToWatchlist(ctx context.Context, userID, currencyPair string) (*domain.WatchlistItem, error) {
	args := m.Called(ctx, userID, currencyPair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WatchlistItem), args.Error(1)
}
func (m *MockWatchlistService) RemoveFromWatchlist(ctx context.Context, userID, currencyPair string) error {
	args := m.Called(ctx, userID, currencyPair)
	return args.Error(0)
}

var _ portssvc.WatchlistSvcFacade = (*MockWatchlistService)(nil)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) ListBalances(ctx context.Context, userID string) ([]domain.WalletBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletBalance), args.Error(1)
}
func (m *MockWalletService) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockWalletService) ExchangeCurrency(ctx context.Context, userID, from, to string, amount decimal.Decimal) (*domain.ExchangeQuote, error) {
	args := m.Called(ctx, userID, from, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeQuote), args.Error(1)
}
func (m *MockWalletService) TransferMoney(ctx context.Context, userID, receiverID, currency string, amount decimal.Decimal) error {
	args := m.Called(ctx, userID, receiverID, currency, amount)
	return args.Error(0)
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Mock FriendService ---
type MockFriendService struct {
	mock.Mock
}

func (m *MockFriendService) ListFriends(ctx context.Context, userID string) ([]domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}
func (m *MockFriendService) ListPendingRequests(ctx context.Context, userID string) ([]domain.PendingFriendRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingFriendRequest), args.Error(1)
}
func (m *MockFriendService) SendFriendRequest(ctx context.Context, userID, receiverID string) (*domain.FriendRequest, error) {
	args := m.Called(ctx, userID, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FriendRequest), args.Error(1)
}
func (m *MockFriendService) AcceptFriendRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error) {
	args := m.Called(ctx, userID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FriendRequest), args.Error(1)
}
func (m *MockFriendService) RejectFriendRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error) {
	args := m.Called(ctx, userID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FriendRequest), args.Error(1)
}

var _ portssvc.FriendSvcFacade = (*MockFriendService)(nil)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileService) SearchProfiles(ctx context.Context, userID, query string, limit int) ([]domain.Profile, error) {
	args := m.Called(ctx, userID, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// generateTestToken creates a signed JWT whose subject is userID.
func generateTestToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "fx-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

// amountArg matches a decimal argument by value, ignoring its exponent.
func amountArg(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

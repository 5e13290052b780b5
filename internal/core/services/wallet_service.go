package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 200
)

// walletService reads ledger data and passes money movements to the ledger's
// procedures. Balance checks here are advisory; the ledger re-validates.
// Transfers go only to accepted friends.
type walletService struct {
	BaseService
	walletRepo portsrepo.WalletRepositoryFacade
	rateRepo   portsrepo.ExchangeRateReader
	friendRepo portsrepo.FriendRequestReader
}

func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, rateRepo portsrepo.ExchangeRateReader, friendRepo portsrepo.FriendRequestReader) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo, rateRepo: rateRepo, friendRepo: friendRepo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) ListBalances(ctx context.Context, userID string) ([]domain.WalletBalance, error) {
	wallet, err := s.walletFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	balances, err := s.walletRepo.ListBalances(ctx, wallet.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balances", slog.String("wallet_id", wallet.ID))
		return nil, asStoreError("failed to list balances", err)
	}
	return balances, nil
}

func (s *walletService) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTransactionLimit
	} else if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}

	txns, err := s.walletRepo.ListTransactions(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, asStoreError("failed to list transactions", err)
	}
	return txns, nil
}

// ExchangeCurrency quotes the conversion from the rate store, never from a
// client-side cache, then calls exchange_currency.
func (s *walletService) ExchangeCurrency(ctx context.Context, userID, from, to string, amount decimal.Decimal) (*domain.ExchangeQuote, error) {
	from, to = domain.NormalizeCurrencyCode(from), domain.NormalizeCurrencyCode(to)
	if err := validateMovement(amount, from); err != nil {
		return nil, err
	}
	if !domain.IsCurrencyCode(to) {
		return nil, apperrors.NewValidationError("target currency must be a 3-letter currency code")
	}
	if from == to {
		return nil, apperrors.NewValidationError("cannot exchange a currency into itself")
	}

	wallet, err := s.walletFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.checkBalance(ctx, wallet.ID, from, amount); err != nil {
		return nil, err
	}

	rate, err := s.currentRate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	quote := &domain.ExchangeQuote{
		FromCurrency:    from,
		ToCurrency:      to,
		Amount:          amount,
		Rate:            rate.Rate,
		ConvertedAmount: amount.Mul(rate.Rate),
		RateUpdatedAt:   rate.LastUpdated,
	}

	if err := s.walletRepo.ExchangeCurrency(ctx, userID, from, to, amount); err != nil {
		s.LogError(ctx, err, "Ledger exchange failed", slog.String("user_id", userID), slog.String("from", from), slog.String("to", to))
		return nil, asStoreError("exchange_currency failed", err)
	}

	s.LogInfo(ctx, "Currency exchanged",
		slog.String("user_id", userID),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("amount", amount.String()),
		slog.String("rate", rate.Rate.String()))
	return quote, nil
}

func (s *walletService) TransferMoney(ctx context.Context, userID, receiverID, currency string, amount decimal.Decimal) error {
	currency = domain.NormalizeCurrencyCode(currency)
	if err := validateMovement(amount, currency); err != nil {
		return err
	}
	if receiverID == "" {
		return apperrors.NewValidationError("receiver ID is required")
	}
	if receiverID == userID {
		return apperrors.NewValidationError("cannot transfer money to yourself")
	}
	if err := requireUser(userID); err != nil {
		return err
	}
	friends, err := s.friendRepo.AreFriends(ctx, userID, receiverID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check friendship", slog.String("user_id", userID), slog.String("receiver_id", receiverID))
		return asStoreError("failed to check friendship", err)
	}
	if !friends {
		return apperrors.NewForbiddenError("money can only be sent to accepted friends")
	}

	sender, err := s.walletFor(ctx, userID)
	if err != nil {
		return err
	}
	receiver, err := s.walletRepo.FindWalletByUser(ctx, receiverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("receiver has no wallet")
		}
		return asStoreError("failed to find receiver wallet", err)
	}
	if err := s.checkBalance(ctx, sender.ID, currency, amount); err != nil {
		return err
	}

	if err := s.walletRepo.TransferMoney(ctx, sender.ID, receiver.ID, currency, amount); err != nil {
		s.LogError(ctx, err, "Ledger transfer failed", slog.String("user_id", userID), slog.String("receiver_id", receiverID))
		return asStoreError("transfer_money failed", err)
	}

	s.LogInfo(ctx, "Money transferred",
		slog.String("user_id", userID),
		slog.String("receiver_id", receiverID),
		slog.String("currency", currency),
		slog.String("amount", amount.String()))
	return nil
}

func (s *walletService) walletFor(ctx context.Context, userID string) (*domain.Wallet, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	wallet, err := s.walletRepo.FindWalletByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find wallet", slog.String("user_id", userID))
		return nil, asStoreError("failed to find wallet", err)
	}
	return wallet, nil
}

func (s *walletService) checkBalance(ctx context.Context, walletID, currency string, amount decimal.Decimal) error {
	balances, err := s.walletRepo.ListBalances(ctx, walletID)
	if err != nil {
		return asStoreError("failed to list balances", err)
	}
	if available := domain.BalanceOf(balances, currency); available.LessThan(amount) {
		return fmt.Errorf("%w: %s balance %s is below %s", apperrors.ErrInsufficientFunds, currency, available, amount)
	}
	return nil
}

// currentRate finds from->to, falling back to the inverse of to->from.
func (s *walletService) currentRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	direct, err := s.rateRepo.FindRate(ctx, from, to)
	if err == nil {
		if !direct.Rate.IsPositive() {
			return nil, apperrors.NewNotFoundError("no usable exchange rate for " + from + " to " + to)
		}
		return direct, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, asStoreError("failed to find exchange rate", err)
	}

	inverse, err := s.rateRepo.FindRate(ctx, to, from)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no exchange rate available for " + from + " to " + to)
		}
		return nil, asStoreError("failed to find exchange rate", err)
	}
	if !inverse.Rate.IsPositive() {
		return nil, apperrors.NewNotFoundError("no usable exchange rate for " + from + " to " + to)
	}
	return &domain.ExchangeRate{
		ID:             inverse.ID,
		BaseCurrency:   from,
		TargetCurrency: to,
		Rate:           decimal.NewFromInt(1).Div(inverse.Rate),
		LastUpdated:    inverse.LastUpdated,
	}, nil
}

func validateMovement(amount decimal.Decimal, currency string) error {
	if !domain.IsCurrencyCode(currency) {
		return apperrors.NewValidationError("currency must be a 3-letter currency code")
	}
	if !amount.IsPositive() {
		return apperrors.NewValidationError("amount must be positive")
	}
	return nil
}

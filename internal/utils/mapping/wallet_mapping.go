package mapping

import (
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/SscSPs/fx_wallet_backend/internal/models"
)

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{ID: m.ID, UserID: m.UserID, CreatedAt: m.CreatedAt.UTC()}
}

// ToDomainWalletBalance converts a model WalletBalance to a domain WalletBalance
func ToDomainWalletBalance(m models.WalletBalance) domain.WalletBalance {
	return domain.WalletBalance{
		Currency:  m.Currency,
		Balance:   m.Balance,
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:         m.ID,
		Type:       domain.TransactionType(m.Type),
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Amount:     m.Amount,
		Currency:   m.Currency,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

package mapping

import (
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/SscSPs/fx_wallet_backend/internal/models"
)

func ToModelFriendRequest(d domain.FriendRequest) models.FriendRequest {
	return models.FriendRequest{
		ID:         d.ID,
		SenderID:   d.SenderID,
		ReceiverID: d.ReceiverID,
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func ToDomainFriendRequest(m models.FriendRequest) domain.FriendRequest {
	return domain.FriendRequest{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Status:     domain.FriendRequestStatus(m.Status),
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ID:        m.ID,
		Nickname:  m.Nickname,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

package dto

import (
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
)

// SendFriendRequestRequest asks ReceiverID to become a friend.
type SendFriendRequestRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
}

// ProfileSearchQuery filters profiles by nickname.
type ProfileSearchQuery struct {
	Query string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

type ProfileResponse struct {
	ID        string    `json:"id"`
	Nickname  *string   `json:"nickname"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type FriendRequestResponse struct {
	ID         string                     `json:"id"`
	SenderID   string                     `json:"sender_id"`
	ReceiverID string                     `json:"receiver_id"`
	Status     domain.FriendRequestStatus `json:"status"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
	Sender     *ProfileResponse           `json:"sender,omitempty"`
}

func ToProfileResponse(p domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Nickname:  p.Nickname,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
	}
}

func ToListProfileResponse(profiles []domain.Profile) []ProfileResponse {
	responses := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = ToProfileResponse(p)
	}
	return responses
}

func ToFriendRequestResponse(r domain.FriendRequest) FriendRequestResponse {
	return FriendRequestResponse{
		ID:         r.ID,
		SenderID:   r.SenderID,
		ReceiverID: r.ReceiverID,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func ToListPendingRequestResponse(requests []domain.PendingFriendRequest) []FriendRequestResponse {
	responses := make([]FriendRequestResponse, len(requests))
	for i, r := range requests {
		sender := ToProfileResponse(r.Sender)
		responses[i] = ToFriendRequestResponse(r.FriendRequest)
		responses[i].Sender = &sender
	}
	return responses
}

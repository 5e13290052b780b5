package services

import (
	"context"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
)

// FriendSvcFacade manages friend requests and the friend list that bounds
// who a user may send money to.
type FriendSvcFacade interface {
	// ListFriends returns the profiles of the user's accepted friends.
	ListFriends(ctx context.Context, userID string) ([]domain.Profile, error)

	// ListPendingRequests returns incoming requests awaiting the user's answer.
	ListPendingRequests(ctx context.Context, userID string) ([]domain.PendingFriendRequest, error)

	// SendFriendRequest asks receiverID to become the user's friend.
	SendFriendRequest(ctx context.Context, userID, receiverID string) (*domain.FriendRequest, error)

	// AcceptFriendRequest accepts a pending request addressed to the user.
	AcceptFriendRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error)

	// RejectFriendRequest rejects a pending request addressed to the user.
	RejectFriendRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error)
}

// ProfileSvcFacade looks up user profiles.
type ProfileSvcFacade interface {
	// GetProfile returns one profile.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)

	// SearchProfiles finds other users by nickname.
	SearchProfiles(ctx context.Context, userID, query string, limit int) ([]domain.Profile, error)
}

package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
)

// FriendRequestReader defines read operations for friend requests.
type FriendRequestReader interface {
	// FindFriendRequest returns one request, or apperrors.ErrNotFound.
	FindFriendRequest(ctx context.Context, id string) (*domain.FriendRequest, error)

	// ListPendingRequests returns requests awaiting userID's answer, newest first.
	ListPendingRequests(ctx context.Context, userID string) ([]domain.PendingFriendRequest, error)

	// ListFriends returns the profiles of users with an accepted request to or
	// from userID, most recent friendship first.
	ListFriends(ctx context.Context, userID string) ([]domain.Profile, error)

	// AreFriends reports whether an accepted request links the two users.
	AreFriends(ctx context.Context, userA, userB string) (bool, error)
}

// FriendRequestWriter defines write operations for friend requests.
type FriendRequestWriter interface {
	// CreateFriendRequest inserts a pending request. It returns
	// apperrors.ErrDuplicate when a pending or accepted request already links
	// the two users in either direction.
	CreateFriendRequest(ctx context.Context, req domain.FriendRequest) error

	// UpdateFriendRequestStatus moves a pending request to status. It returns
	// apperrors.ErrNotFound when no pending request has that id.
	UpdateFriendRequestStatus(ctx context.Context, id string, status domain.FriendRequestStatus, at time.Time) error
}

// FriendRepositoryFacade combines all friend-request repository interfaces
type FriendRepositoryFacade interface {
	FriendRequestReader
	FriendRequestWriter
}

// ProfileReader reads user profiles. Profiles are created by the identity
// provider and are read-only here.
type ProfileReader interface {
	// FindProfile returns a profile, or apperrors.ErrNotFound.
	FindProfile(ctx context.Context, userID string) (*domain.Profile, error)

	// SearchProfiles returns profiles whose nickname contains query
	// (case-insensitive), excluding excludeID, ordered by nickname.
	SearchProfiles(ctx context.Context, query, excludeID string, limit int) ([]domain.Profile, error)
}

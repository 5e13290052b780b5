package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
)

// FriendRepository is an in-memory friend request store. Profiles for the
// joined reads come from profiles.
type FriendRepository struct {
	mu       sync.RWMutex
	requests []domain.FriendRequest
	profiles *ProfileRepository
}

func NewFriendRepository(profiles *ProfileRepository) *FriendRepository {
	return &FriendRepository{profiles: profiles}
}

var _ portsrepo.FriendRepositoryFacade = (*FriendRepository)(nil)

func (r *FriendRepository) FindFriendRequest(_ context.Context, id string) (*domain.FriendRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.ID == id {
			return &req, nil
		}
	}
	return nil, apperrors.NewNotFoundError("friend request not found")
}

func (r *FriendRepository) ListPendingRequests(_ context.Context, userID string) ([]domain.PendingFriendRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PendingFriendRequest, 0)
	for _, req := range r.requests {
		if req.ReceiverID != userID || req.Status != domain.FriendRequestPending {
			continue
		}
		sender, _ := r.profiles.lookup(req.SenderID)
		sender.ID = req.SenderID
		out = append(out, domain.PendingFriendRequest{FriendRequest: req, Sender: sender})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *FriendRepository) ListFriends(_ context.Context, userID string) ([]domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accepted := make([]domain.FriendRequest, 0)
	for _, req := range r.requests {
		if req.Status == domain.FriendRequestAccepted && req.Involves(userID) {
			accepted = append(accepted, req)
		}
	}
	sort.SliceStable(accepted, func(i, j int) bool { return accepted[i].UpdatedAt.After(accepted[j].UpdatedAt) })

	out := make([]domain.Profile, 0, len(accepted))
	for _, req := range accepted {
		friendID := req.Counterpart(userID)
		p, _ := r.profiles.lookup(friendID)
		p.ID = friendID
		out = append(out, p)
	}
	return out, nil
}

func (r *FriendRepository) AreFriends(_ context.Context, userA, userB string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.Status == domain.FriendRequestAccepted && req.Involves(userA) && req.Involves(userB) {
			return true, nil
		}
	}
	return false, nil
}

func (r *FriendRepository) CreateFriendRequest(_ context.Context, req domain.FriendRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.requests {
		if existing.Status != domain.FriendRequestRejected && existing.Involves(req.SenderID) && existing.Involves(req.ReceiverID) {
			return fmt.Errorf("%w: a friend request between these users is already %s", apperrors.ErrDuplicate, existing.Status)
		}
	}
	r.requests = append(r.requests, req)
	return nil
}

func (r *FriendRepository) UpdateFriendRequestStatus(_ context.Context, id string, status domain.FriendRequestStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == id && r.requests[i].Status == domain.FriendRequestPending {
			r.requests[i].Status = status
			r.requests[i].UpdatedAt = at
			return nil
		}
	}
	return apperrors.NewNotFoundError("no pending friend request " + id)
}

package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsgw "github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

const maxProfileSearchLimit = 50

type friendService struct {
	BaseService
	friendRepo  portsrepo.FriendRepositoryFacade
	profileRepo portsrepo.ProfileReader
}

// NewFriendService creates the friend service. events may be nil.
func NewFriendService(friendRepo portsrepo.FriendRepositoryFacade, profileRepo portsrepo.ProfileReader, events portsgw.EventSource) portssvc.FriendSvcFacade {
	return &friendService{
		BaseService: BaseService{Events: events},
		friendRepo:  friendRepo,
		profileRepo: profileRepo,
	}
}

var _ portssvc.FriendSvcFacade = (*friendService)(nil)

func (s *friendService) ListFriends(ctx context.Context, userID string) ([]domain.Profile, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	friends, err := s.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list friends", slog.String("user_id", userID))
		return nil, asStoreError("failed to list friends", err)
	}
	return friends, nil
}

func (s *friendService) ListPendingRequests(ctx context.Context, userID string) ([]domain.PendingFriendRequest, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	requests, err := s.friendRepo.ListPendingRequests(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list friend requests", slog.String("user_id", userID))
		return nil, asStoreError("failed to list friend requests", err)
	}
	return requests, nil
}

func (s *friendService) SendFriendRequest(ctx context.Context, userID, receiverID string) (*domain.FriendRequest, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	receiverID = strings.TrimSpace(receiverID)
	if receiverID == "" {
		return nil, apperrors.NewValidationError("receiver ID is required")
	}
	if receiverID == userID {
		return nil, apperrors.NewValidationError("cannot send a friend request to yourself")
	}
	if _, err := s.profileRepo.FindProfile(ctx, receiverID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("receiver has no profile")
		}
		return nil, asStoreError("failed to find receiver profile", err)
	}

	now := s.CurrentTime()
	req := domain.FriendRequest{
		ID:         uuid.NewString(),
		SenderID:   userID,
		ReceiverID: receiverID,
		Status:     domain.FriendRequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.friendRepo.CreateFriendRequest(ctx, req); err != nil {
		s.LogError(ctx, err, "Failed to create friend request", slog.String("user_id", userID), slog.String("receiver_id", receiverID))
		return nil, err
	}

	s.LogInfo(ctx, "Friend request sent", slog.String("user_id", userID), slog.String("receiver_id", receiverID))
	s.PublishChange(ctx, domain.TableFriendRequests, domain.ChangeInsert, req.ID, req.SenderID, req.ReceiverID)
	return &req, nil
}

func (s *friendService) AcceptFriendRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error) {
	return s.answer(ctx, userID, requestID, domain.FriendRequestAccepted)
}

func (s *friendService) RejectFriendRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error) {
	return s.answer(ctx, userID, requestID, domain.FriendRequestRejected)
}

// answer moves a pending request addressed to userID to status. Requests the
// user cannot answer are reported as not found.
func (s *friendService) answer(ctx context.Context, userID, requestID string, status domain.FriendRequestStatus) (*domain.FriendRequest, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if requestID == "" {
		return nil, apperrors.NewValidationError("request ID is required")
	}

	req, err := s.friendRepo.FindFriendRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, asStoreError("failed to find friend request", err)
	}
	if req.ReceiverID != userID {
		return nil, apperrors.NewNotFoundError("friend request not found")
	}
	if req.Status != domain.FriendRequestPending {
		return nil, apperrors.NewValidationError("friend request is already " + string(req.Status))
	}

	now := s.CurrentTime()
	if err := s.friendRepo.UpdateFriendRequestStatus(ctx, req.ID, status, now); err != nil {
		s.LogError(ctx, err, "Failed to answer friend request", slog.String("request_id", req.ID), slog.String("status", string(status)))
		return nil, err
	}
	req.Status = status
	req.UpdatedAt = now

	s.LogInfo(ctx, "Friend request answered", slog.String("request_id", req.ID), slog.String("status", string(status)))
	s.PublishChange(ctx, domain.TableFriendRequests, domain.ChangeUpdate, req.ID, req.SenderID, req.ReceiverID)
	return req, nil
}

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileReader
}

func NewProfileService(profileRepo portsrepo.ProfileReader) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find profile", slog.String("user_id", userID))
		return nil, asStoreError("failed to find profile", err)
	}
	return profile, nil
}

// SearchProfiles never returns the caller's own profile.
func (s *profileService) SearchProfiles(ctx context.Context, userID, query string, limit int) ([]domain.Profile, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > maxProfileSearchLimit {
		limit = maxProfileSearchLimit
	}
	profiles, err := s.profileRepo.SearchProfiles(ctx, strings.TrimSpace(query), userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to search profiles", slog.String("user_id", userID))
		return nil, asStoreError("failed to search profiles", err)
	}
	return profiles, nil
}

package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/SscSPs/fx_wallet_backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRepository(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	repos.Profiles.SeedProfile("alice", "Alice")
	repos.Profiles.SeedProfile("bob", "Bob")
	repos.Profiles.SeedProfile("carol", "Carol")
	t0 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	pending := func(id, sender, receiver string, at time.Time) domain.FriendRequest {
		return domain.FriendRequest{ID: id, SenderID: sender, ReceiverID: receiver, Status: domain.FriendRequestPending, CreatedAt: at, UpdatedAt: at}
	}
	require.NoError(t, repos.Friends.CreateFriendRequest(ctx, pending("r1", "alice", "bob", t0)))
	require.NoError(t, repos.Friends.CreateFriendRequest(ctx, pending("r2", "carol", "bob", t0.Add(time.Minute))))

	err := repos.Friends.CreateFriendRequest(ctx, pending("r3", "bob", "alice", t0))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate, "reverse direction counts as the same pair")

	incoming, err := repos.Friends.ListPendingRequests(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, incoming, 2)
	assert.Equal(t, "r2", incoming[0].ID, "newest first")
	require.NotNil(t, incoming[0].Sender.Nickname)
	assert.Equal(t, "Carol", *incoming[0].Sender.Nickname)

	require.NoError(t, repos.Friends.UpdateFriendRequestStatus(ctx, "r1", domain.FriendRequestAccepted, t0.Add(time.Hour)))
	require.NoError(t, repos.Friends.UpdateFriendRequestStatus(ctx, "r2", domain.FriendRequestRejected, t0.Add(time.Hour)))
	assert.ErrorIs(t, repos.Friends.UpdateFriendRequestStatus(ctx, "r1", domain.FriendRequestRejected, t0), apperrors.ErrNotFound,
		"only pending requests change state")

	ok, err := repos.Friends.AreFriends(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = repos.Friends.AreFriends(ctx, "bob", "carol")
	assert.False(t, ok)

	friends, err := repos.Friends.ListFriends(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].ID)

	// A rejected pair may try again.
	assert.NoError(t, repos.Friends.CreateFriendRequest(ctx, pending("r4", "carol", "bob", t0.Add(2*time.Hour))))
}

func TestProfileRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProfileRepository()
	repo.SeedProfile("u1", "Maria")
	repo.SeedProfile("u2", "Mario")
	repo.SeedProfile("u3", "Zoe")
	repo.SeedProfile("u4", "")

	found, err := repo.SearchProfiles(ctx, "MAR", "u1", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "u2", found[0].ID)

	all, _ := repo.SearchProfiles(ctx, "", "", 2)
	require.Len(t, all, 2)
	assert.Equal(t, "Maria", *all[0].Nickname)

	_, err = repo.FindProfile(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

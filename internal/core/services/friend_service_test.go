package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fx_wallet_backend/internal/adapters/realtime"
	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet_backend/internal/core/services"
	"github.com/SscSPs/fx_wallet_backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FriendServiceTestSuite struct {
	suite.Suite
	repos   *memory.Repositories
	changes []domain.TableChange
	service portssvc.FriendSvcFacade
}

func (suite *FriendServiceTestSuite) SetupTest() {
	suite.repos = memory.NewRepositories()
	suite.repos.Profiles.SeedProfile("alice", "Alice")
	suite.repos.Profiles.SeedProfile("bob", "Bob")
	suite.repos.Profiles.SeedProfile("carol", "Carol")

	broker := realtime.NewBroker()
	suite.changes = nil
	_, err := broker.Subscribe(domain.TableFriendRequests, func(c domain.TableChange) { suite.changes = append(suite.changes, c) })
	suite.Require().NoError(err)

	suite.service = services.NewFriendService(suite.repos.Friends, suite.repos.Profiles, broker)
}

func (suite *FriendServiceTestSuite) TestSendAndAccept() {
	ctx := context.Background()

	req, err := suite.service.SendFriendRequest(ctx, "alice", " bob ")
	suite.Require().NoError(err)
	suite.Equal(domain.FriendRequestPending, req.Status)
	suite.Equal("bob", req.ReceiverID)

	pending, err := suite.service.ListPendingRequests(ctx, "bob")
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal("Alice", *pending[0].Sender.Nickname)

	accepted, err := suite.service.AcceptFriendRequest(ctx, "bob", req.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.FriendRequestAccepted, accepted.Status)
	suite.False(accepted.UpdatedAt.Before(accepted.CreatedAt))

	for _, user := range []string{"alice", "bob"} {
		friends, err := suite.service.ListFriends(ctx, user)
		suite.Require().NoError(err)
		suite.Require().Len(friends, 1, user)
	}
	carolFriends, _ := suite.service.ListFriends(ctx, "carol")
	suite.Empty(carolFriends)

	suite.Require().Len(suite.changes, 2)
	suite.Equal(domain.ChangeUpdate, suite.changes[1].Operation)
	suite.True(suite.changes[1].VisibleTo("alice"))
	suite.True(suite.changes[1].VisibleTo("bob"))
	suite.False(suite.changes[1].VisibleTo("carol"))
}

func (suite *FriendServiceTestSuite) TestSendRejections() {
	ctx := context.Background()

	_, err := suite.service.SendFriendRequest(ctx, "alice", "alice")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SendFriendRequest(ctx, "alice", "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SendFriendRequest(ctx, "alice", "ghost")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.SendFriendRequest(ctx, "alice", "bob")
	suite.Require().NoError(err)
	_, err = suite.service.SendFriendRequest(ctx, "bob", "alice")
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.Len(suite.changes, 1)
}

func (suite *FriendServiceTestSuite) TestOnlyReceiverAnswersOnce() {
	ctx := context.Background()
	req, err := suite.service.SendFriendRequest(ctx, "alice", "bob")
	suite.Require().NoError(err)

	_, err = suite.service.AcceptFriendRequest(ctx, "alice", req.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound, "the sender cannot accept their own request")
	_, err = suite.service.RejectFriendRequest(ctx, "carol", req.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	rejected, err := suite.service.RejectFriendRequest(ctx, "bob", req.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.FriendRequestRejected, rejected.Status)

	_, err = suite.service.AcceptFriendRequest(ctx, "bob", req.ID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AcceptFriendRequest(ctx, "bob", "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	// Rejection allows a fresh request.
	_, err = suite.service.SendFriendRequest(ctx, "alice", "bob")
	suite.NoError(err)
}

func TestFriendServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FriendServiceTestSuite))
}

func TestProfileService(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	repos.Profiles.SeedProfile("u1", "Marta")
	repos.Profiles.SeedProfile("u2", "Martin")
	svc := services.NewProfileService(repos.Profiles)

	profile, err := svc.GetProfile(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "u2", profile.ID)

	_, err = svc.GetProfile(ctx, "u9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	found, err := svc.SearchProfiles(ctx, "u1", "mart", 0)
	require.NoError(t, err)
	require.Len(t, found, 1, "the caller is excluded")
	assert.Equal(t, "u2", found[0].ID)

	_, err = svc.SearchProfiles(ctx, "", "mart", 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

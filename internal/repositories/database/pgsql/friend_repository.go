package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	"github.com/SscSPs/fx_wallet_backend/internal/models"
	"github.com/SscSPs/fx_wallet_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const friendRequestColumns = `id, sender_id, receiver_id, status, created_at, updated_at`

type PgxFriendRepository struct {
	BaseRepository
}

func newPgxFriendRepository(pool *pgxpool.Pool) *PgxFriendRepository {
	return &PgxFriendRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FriendRepositoryFacade = (*PgxFriendRepository)(nil)

func (r *PgxFriendRepository) FindFriendRequest(ctx context.Context, id string) (*domain.FriendRequest, error) {
	var m models.FriendRequest
	err := r.Pool.QueryRow(ctx,
		`SELECT `+friendRequestColumns+` FROM friend_requests WHERE id = $1`, id,
	).Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("friend request not found")
		}
		return nil, apperrors.NewStoreError("failed to find friend request", err)
	}
	req := mapping.ToDomainFriendRequest(m)
	return &req, nil
}

// ListPendingRequests joins each incoming request with the sender's profile.
func (r *PgxFriendRepository) ListPendingRequests(ctx context.Context, userID string) ([]domain.PendingFriendRequest, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT fr.id, fr.sender_id, fr.receiver_id, fr.status, fr.created_at, fr.updated_at,
		       p.nickname, p.avatar_url, COALESCE(p.created_at, fr.created_at)
		FROM friend_requests fr
		LEFT JOIN profiles p ON p.id = fr.sender_id
		WHERE fr.receiver_id = $1 AND fr.status = 'pending'
		ORDER BY fr.created_at DESC`, userID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query friend requests", err)
	}
	defer rows.Close()

	requests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PendingFriendRequest, error) {
		var m models.FriendRequest
		var p models.Profile
		err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Status, &m.CreatedAt, &m.UpdatedAt,
			&p.Nickname, &p.AvatarURL, &p.CreatedAt)
		p.ID = m.SenderID
		return domain.PendingFriendRequest{
			FriendRequest: mapping.ToDomainFriendRequest(m),
			Sender:        mapping.ToDomainProfile(p),
		}, err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan friend requests", err)
	}
	return requests, nil
}

// ListFriends resolves accepted requests in both directions to the other user's profile.
func (r *PgxFriendRepository) ListFriends(ctx context.Context, userID string) ([]domain.Profile, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT f.friend_id, p.nickname, p.avatar_url, COALESCE(p.created_at, f.updated_at)
		FROM (
			SELECT CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS friend_id, updated_at
			FROM friend_requests
			WHERE status = 'accepted' AND (sender_id = $1 OR receiver_id = $1)
		) f
		LEFT JOIN profiles p ON p.id = f.friend_id
		ORDER BY f.updated_at DESC`, userID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query friends", err)
	}
	defer rows.Close()

	friends, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Profile, error) {
		var p models.Profile
		err := row.Scan(&p.ID, &p.Nickname, &p.AvatarURL, &p.CreatedAt)
		return mapping.ToDomainProfile(p), err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan friends", err)
	}
	return friends, nil
}

func (r *PgxFriendRepository) AreFriends(ctx context.Context, userA, userB string) (bool, error) {
	var ok bool
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE status = 'accepted'
			  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
		)`, userA, userB).Scan(&ok)
	if err != nil {
		return false, apperrors.NewStoreError("failed to check friendship", err)
	}
	return ok, nil
}

// CreateFriendRequest inserts a pending request; the open-pair unique index reports duplicates.
func (r *PgxFriendRepository) CreateFriendRequest(ctx context.Context, req domain.FriendRequest) error {
	m := mapping.ToModelFriendRequest(req)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO friend_requests (`+friendRequestColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.SenderID, m.ReceiverID, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a friend request between these users already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewStoreError("failed to create friend request", err)
	}
	return nil
}

func (r *PgxFriendRepository) UpdateFriendRequestStatus(ctx context.Context, id string, status domain.FriendRequestStatus, at time.Time) error {
	ct, err := r.Pool.Exec(ctx,
		`UPDATE friend_requests SET status = $2, updated_at = $3 WHERE id = $1 AND status = 'pending'`,
		id, string(status), at,
	)
	if err != nil {
		return apperrors.NewStoreError("failed to update friend request", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("no pending friend request " + id)
	}
	return nil
}

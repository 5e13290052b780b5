package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	"github.com/SscSPs/fx_wallet_backend/internal/models"
	"github.com/SscSPs/fx_wallet_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxProfileRepository reads the profiles table maintained by the identity provider.
type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) *PgxProfileRepository {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileReader = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) FindProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var m models.Profile
	err := r.Pool.QueryRow(ctx,
		`SELECT id, nickname, avatar_url, created_at FROM profiles WHERE id = $1`, userID,
	).Scan(&m.ID, &m.Nickname, &m.AvatarURL, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("profile not found for user " + userID)
		}
		return nil, apperrors.NewStoreError("failed to find profile", err)
	}
	p := mapping.ToDomainProfile(m)
	return &p, nil
}

// SearchProfiles matches nicknames with ILIKE. Profiles without a nickname never match.
func (r *PgxProfileRepository) SearchProfiles(ctx context.Context, query, excludeID string, limit int) ([]domain.Profile, error) {
	sql := `
		SELECT id, nickname, avatar_url, created_at
		FROM profiles
		WHERE nickname IS NOT NULL
		  AND nickname ILIKE '%' || $1 || '%'
		  AND id <> $2
		ORDER BY nickname`
	args := []any{escapeLike(query), excludeID}
	if limit > 0 {
		sql += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to search profiles", err)
	}
	defer rows.Close()

	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Profile, error) {
		var m models.Profile
		err := row.Scan(&m.ID, &m.Nickname, &m.AvatarURL, &m.CreatedAt)
		return mapping.ToDomainProfile(m), err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan profiles", err)
	}
	return profiles, nil
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
)

// ProfileRepository is an in-memory profile store. Profiles are seeded by
// callers; the service layer never writes them.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[string]domain.Profile)}
}

var _ portsrepo.ProfileReader = (*ProfileRepository)(nil)

// SeedProfile stores a profile for userID with the given nickname.
func (r *ProfileRepository) SeedProfile(userID, nickname string) domain.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := domain.Profile{ID: userID, CreatedAt: time.Now().UTC()}
	if nickname != "" {
		p.Nickname = &nickname
	}
	r.profiles[userID] = p
	return p
}

func (r *ProfileRepository) FindProfile(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.lookup(userID)
	if !ok {
		return nil, apperrors.NewNotFoundError("profile not found for user " + userID)
	}
	return &p, nil
}

func (r *ProfileRepository) SearchProfiles(_ context.Context, query, excludeID string, limit int) ([]domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	out := make([]domain.Profile, 0)
	for id, p := range r.profiles {
		if id == excludeID || p.Nickname == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*p.Nickname), needle) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].Nickname < *out[j].Nickname })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ProfileRepository) lookup(userID string) (domain.Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	return p, ok
}

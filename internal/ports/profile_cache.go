package ports

import (
	"context"
	"time"

	"github.com/edenis00/fintrack-cli/internal/domain"
)

// CachedProfile is the last server-verified profile snapshot together
// with the time it was fetched.
type CachedProfile struct {
	Profile   domain.UserProfile `json:"profile"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// ProfileCache persists the snapshot across runs. Load returns
// domain.ErrProfileNotCached when nothing is stored.
type ProfileCache interface {
	Load(ctx context.Context) (CachedProfile, error)
	Save(ctx context.Context, cached CachedProfile) error
	Clear(ctx context.Context) error
}

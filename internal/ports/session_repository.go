package ports

import (
	"context"

	"github.com/kriju0726/HealiFy/internal/domain"
)

// SessionRepository persists the durable part of a session across
// process restarts. Load returns domain.ErrNoSession when nothing was
// stored.
type SessionRepository interface {
	Load(ctx context.Context) (domain.SessionSnapshot, error)
	Save(ctx context.Context, snapshot domain.SessionSnapshot) error
	Clear(ctx context.Context) error
}

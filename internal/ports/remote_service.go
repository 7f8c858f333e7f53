package ports

import (
	"context"

	"github.com/kriju0726/HealiFy/internal/domain"
)

// LoginResult carries the credential and account returned by a
// successful login.
type LoginResult struct {
	Credential string
	Account    domain.Account
}

// RemoteService is the single facade through which all network-bound
// operations are issued. Calls are single-shot with no implicit retry;
// implementations normalize every failure into the domain error kinds,
// and a server-side credential rejection always surfaces as
// domain.ErrUnauthorized.
type RemoteService interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, email, password string) error
	GetProfile(ctx context.Context, credential string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, credential string, profile domain.Profile) (domain.Profile, error)
	Score(ctx context.Context, credential string, typ domain.AssessmentType, answers map[string]int) (domain.PredictionResult, error)
	GetHistory(ctx context.Context, credential string) ([]domain.HistoryEntry, error)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/kriju0726/HealiFy/internal/ports"
)

// CredentialKey is the credential store entry holding the bearer token
// for the active session.
const CredentialKey = "healify/credential"

// SessionStore owns the process-wide session cell. All mutations are
// atomic from the caller's point of view; durable mirroring through the
// repository and credential store is optional (both may be nil).
type SessionStore struct {
	repo  ports.SessionRepository
	creds ports.CredentialStore
	clock ports.Clock

	mu          sync.Mutex
	session     domain.Session
	remembered  string
	initialized bool
}

func NewSessionStore(repo ports.SessionRepository, creds ports.CredentialStore, clock ports.Clock) *SessionStore {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionStore{
		repo:    repo,
		creds:   creds,
		clock:   clock,
		session: domain.Session{Initializing: true},
	}
}

// Initialize runs the one-time startup recovery check. Any recovery
// failure is treated as "no prior session"; the initializing flag is
// cleared exactly once regardless of outcome, and repeat calls are
// no-ops.
func (s *SessionStore) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}
	s.initialized = true
	defer func() { s.session.Initializing = false }()

	if s.repo == nil {
		return
	}

	snapshot, err := s.repo.Load(ctx)
	if err != nil {
		return
	}
	s.remembered = snapshot.RememberedRoute

	if snapshot.Account == nil || s.creds == nil {
		return
	}

	credential, err := s.creds.Get(ctx, CredentialKey)
	if err != nil || credential == "" {
		return
	}

	account := *snapshot.Account
	s.session.Account = &account
	s.session.Credential = credential
}

// Login unconditionally installs the account and credential. Validation
// happens at the remote facade before this is called. The in-memory
// session is set even when durable mirroring fails.
func (s *SessionStore) Login(ctx context.Context, account domain.Account, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Account = &account
	s.session.Credential = credential

	if s.creds != nil {
		if err := s.creds.Put(ctx, CredentialKey, credential); err != nil {
			return fmt.Errorf("store credential: %w", err)
		}
	}

	return s.persistLocked(ctx)
}

// Logout clears the session. Idempotent.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Account = nil
	s.session.Credential = ""

	var errs []error
	if s.creds != nil {
		if err := s.creds.Delete(ctx, CredentialKey); err != nil {
			errs = append(errs, fmt.Errorf("delete credential: %w", err))
		}
	}
	if s.repo != nil {
		if err := s.repo.Clear(ctx); err != nil {
			errs = append(errs, fmt.Errorf("clear session snapshot: %w", err))
		}
	}

	return errors.Join(errs...)
}

// UpdateProfile shallow-merges a partial profile into the current
// account. Calling it while logged out is a contract violation and
// fails with domain.ErrInvalidState.
func (s *SessionStore) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Account == nil {
		return fmt.Errorf("update profile without an account: %w", domain.ErrInvalidState)
	}

	s.session.Account.Profile = patch.Apply(s.session.Account.Profile)

	return s.persistLocked(ctx)
}

// ReplaceProfile installs the canonical profile returned by the remote
// service, e.g. after a profile fetch.
func (s *SessionStore) ReplaceProfile(ctx context.Context, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Account == nil {
		return fmt.Errorf("replace profile without an account: %w", domain.ErrInvalidState)
	}

	s.session.Account.Profile = profile

	return s.persistLocked(ctx)
}

func (s *SessionStore) IsProfileComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Account == nil {
		return false
	}

	return s.session.Account.Profile.Complete()
}

// Snapshot returns a copy of the current session. The embedded account,
// if any, is detached from the store's own copy.
func (s *SessionStore) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session
	if session.Account != nil {
		account := *session.Account
		session.Account = &account
	}

	return session
}

func (s *SessionStore) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.Credential
}

// RememberRoute records the destination a redirected visitor asked for,
// so a later login can hand control back there.
func (s *SessionStore) RememberRoute(ctx context.Context, route string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remembered = route
	_ = s.persistLocked(ctx)
}

// ConsumeRememberedRoute returns and clears the remembered destination.
func (s *SessionStore) ConsumeRememberedRoute(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	route := s.remembered
	s.remembered = ""
	if route != "" {
		_ = s.persistLocked(ctx)
	}

	return route
}

func (s *SessionStore) persistLocked(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	snapshot := domain.SessionSnapshot{RememberedRoute: s.remembered}
	if s.session.Account != nil {
		account := *s.session.Account
		snapshot.Account = &account
	}

	if err := s.repo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}

	return nil
}

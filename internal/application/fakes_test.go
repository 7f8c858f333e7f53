package application

import (
	"context"
	"sync"
	"time"

	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/kriju0726/HealiFy/internal/ports"
)

type fakeRemote struct {
	mu         sync.Mutex
	scoreCalls int
	scoreFn    func(ctx context.Context, credential string, typ domain.AssessmentType, answers map[string]int) (domain.PredictionResult, error)
}

var _ ports.RemoteService = (*fakeRemote)(nil)

func (f *fakeRemote) Login(context.Context, string, string) (ports.LoginResult, error) {
	return ports.LoginResult{}, nil
}

func (f *fakeRemote) Register(context.Context, string, string) error { return nil }

func (f *fakeRemote) GetProfile(context.Context, string) (domain.Profile, error) {
	return domain.Profile{}, nil
}

func (f *fakeRemote) UpdateProfile(_ context.Context, _ string, profile domain.Profile) (domain.Profile, error) {
	return profile, nil
}

func (f *fakeRemote) Score(ctx context.Context, credential string, typ domain.AssessmentType, answers map[string]int) (domain.PredictionResult, error) {
	f.mu.Lock()
	f.scoreCalls++
	fn := f.scoreFn
	f.mu.Unlock()

	if fn == nil {
		return domain.PredictionResult{}, nil
	}

	return fn(ctx, credential, typ, answers)
}

func (f *fakeRemote) GetHistory(context.Context, string) ([]domain.HistoryEntry, error) {
	return nil, nil
}

func (f *fakeRemote) ScoreCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.scoreCalls
}

type fakeSessionRepo struct {
	mu        sync.Mutex
	snapshot  *domain.SessionSnapshot
	loadErr   error
	saveErr   error
	loadCalls int
}

var _ ports.SessionRepository = (*fakeSessionRepo)(nil)

func (f *fakeSessionRepo) Load(context.Context) (domain.SessionSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.loadCalls++
	if f.loadErr != nil {
		return domain.SessionSnapshot{}, f.loadErr
	}
	if f.snapshot == nil {
		return domain.SessionSnapshot{}, domain.ErrNoSession
	}

	return *f.snapshot, nil
}

func (f *fakeSessionRepo) Save(_ context.Context, snapshot domain.SessionSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.snapshot = &snapshot

	return nil
}

func (f *fakeSessionRepo) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.snapshot = nil

	return nil
}

type fakeCredentialStore struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
}

var _ ports.CredentialStore = (*fakeCredentialStore)(nil)

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{values: map[string]string{}}
}

func (f *fakeCredentialStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return "", f.getErr
	}

	return f.values[key], nil
}

func (f *fakeCredentialStore) Put(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value

	return nil
}

func (f *fakeCredentialStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.values, key)

	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

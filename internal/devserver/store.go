package devserver

import (
	"fmt"
	"sync"

	"github.com/kriju0726/HealiFy/internal/domain"
)

type userRecord struct {
	ID           string
	Email        string
	PasswordHash []byte
	Profile      domain.Profile
	History      []domain.HistoryEntry
}

type memoryStore struct {
	mu     sync.Mutex
	users  map[string]*userRecord
	nextID int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: map[string]*userRecord{}}
}

func (s *memoryStore) create(email string, passwordHash []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return false
	}

	s.nextID++
	s.users[email] = &userRecord{
		ID:           fmt.Sprintf("usr-%d", s.nextID),
		Email:        email,
		PasswordHash: passwordHash,
	}

	return true
}

// get returns a detached copy so handlers never touch the stored
// record outside the lock.
func (s *memoryStore) get(email string) (userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[email]
	if !ok {
		return userRecord{}, false
	}

	return *record, true
}

func (s *memoryStore) setProfile(email string, profile domain.Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[email]
	if !ok {
		return false
	}
	record.Profile = profile

	return true
}

func (s *memoryStore) appendHistory(email string, entry domain.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record, ok := s.users[email]; ok {
		record.History = append([]domain.HistoryEntry{entry}, record.History...)
	}
}

func (s *memoryStore) history(email string) []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[email]
	if !ok {
		return nil
	}

	out := make([]domain.HistoryEntry, len(record.History))
	copy(out, record.History)

	return out
}

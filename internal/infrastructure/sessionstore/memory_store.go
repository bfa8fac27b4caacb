package sessionstore

import (
	"context"
	"sync"

	"github.com/riskibarqy/starpick-admin/internal/domain/session"
)

// MemoryStore keeps the session for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	value  session.Session
	clears int
}

func NewMemoryStore(initial session.Session) *MemoryStore {
	return &MemoryStore{value: initial}
}

func (s *MemoryStore) Load(_ context.Context) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.value.Token == "" {
		return session.Session{}, session.ErrNoSession
	}
	return s.value, nil
}

func (s *MemoryStore) Save(_ context.Context, value session.Session) error {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.value = session.Session{}
	s.clears++
	s.mu.Unlock()
	return nil
}

// Clears counts Clear calls.
func (s *MemoryStore) Clears() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clears
}

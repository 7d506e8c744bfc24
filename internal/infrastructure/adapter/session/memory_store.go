package session

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
)

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	mu           sync.RWMutex
	sessions     map[string]security.Session
	timeProvider coreport.TimeProvider
}

var _ security.SessionStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty session store
func NewMemoryStore(timeProvider coreport.TimeProvider) *MemoryStore {
	return &MemoryStore{
		sessions:     make(map[string]security.Session),
		timeProvider: timeProvider,
	}
}

// Save stores the session
func (s *MemoryStore) Save(_ context.Context, session security.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	s.evictExpired()
	return nil
}

// Get loads a live session
func (s *MemoryStore) Get(_ context.Context, id string) (*security.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || !sess.ExpiresAt.After(s.timeProvider.Now()) {
		return nil, errs.ErrSessionNotFound
	}
	return &sess, nil
}

// Delete removes the session
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// evictExpired must be called with the write lock held
func (s *MemoryStore) evictExpired() {
	now := s.timeProvider.Now()
	for id, sess := range s.sessions {
		if !sess.ExpiresAt.After(now) {
			delete(s.sessions, id)
		}
	}
}

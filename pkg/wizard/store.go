package wizard

import (
	"context"
	"errors"
	"sync"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps the per-conversation wizard sessions. Sessions are
// transient and live only for the duration of the process.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (Session, error)
	Put(ctx context.Context, sessionID string, session Session) error
	Delete(ctx context.Context, sessionID string) error
}

// InMemoryStore is the only SessionStore implementation; the surrounding
// transport may serve conversations concurrently, so access is locked.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: map[string]Session{}}
}

func (s *InMemoryStore) Get(ctx context.Context, sessionID string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *InMemoryStore) Put(ctx context.Context, sessionID string, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
	return nil
}

func (s *InMemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Package memstore provides an in-memory token store used when Redis is
// not configured (development) and in tests. State does not survive a
// restart; getters on an empty store fail safe to "not authenticated".
package memstore

import (
	"context"
	"sync"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/ports"
)

// TokenStore is an in-memory ports.TokenStore keyed by browser session id.
// Safe for concurrent use.
type TokenStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
}

// NewTokenStore creates an empty in-memory token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{sessions: make(map[string]domainauth.Session)}
}

var _ ports.TokenStore = (*TokenStore)(nil)

func (s *TokenStore) Save(_ context.Context, sid string, sess domainauth.Session) error {
	if sid == "" {
		return ports.ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = sess
	return nil
}

func (s *TokenStore) Get(_ context.Context, sid string) (domainauth.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return domainauth.Session{}, ports.ErrNoSession
	}
	return sess, nil
}

func (s *TokenStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

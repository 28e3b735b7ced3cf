package memory

import (
	"context"
	"sync"

	domainsession "github.com/alanyang/currency-mesh/internal/domain/session"
	portsession "github.com/alanyang/currency-mesh/internal/port/session"
)

var _ portsession.Store = (*SessionStore)(nil)

// SessionStore is the in-process session history. Entries are append
// only; History returns them in append order.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[string][]domainsession.Entry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[string][]domainsession.Entry),
	}
}

func (s *SessionStore) Append(_ context.Context, e domainsession.Entry) error {
	s.mu.Lock()
	s.entries[e.SessionID] = append(s.entries[e.SessionID], e)
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) History(_ context.Context, sessionID string) ([]domainsession.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.entries[sessionID]
	out := make([]domainsession.Entry, len(stored))
	copy(out, stored)
	return out, nil
}

package session

import "sync"

// MemoryStore keeps the session in process memory. It is used by tests and
// when the client runs with --ephemeral.
type MemoryStore struct {
	mu      sync.RWMutex
	current Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.current.Valid() {
		return Session{}, false
	}
	return clone(s.current), true
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

func (s *MemoryStore) Set(sess Session) error {
	if !sess.Valid() {
		return ErrIncompleteSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = clone(sess)
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
	return nil
}

package credentials

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store implementation. It does not survive
// process restart and is intended for tests and ephemeral environments.
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !session.Complete() {
		return ErrIncompleteSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
	return nil
}

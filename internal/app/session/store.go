package session

import (
	"context"
	"sync"
	"time"
)

// Store is the registry of active session ids. A session cookie only
// resolves to an identity while its id is present here, which is what
// makes logout effective before the signed token expires.
type Store interface {
	Put(ctx context.Context, sid string, userID int64, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
	Exists(ctx context.Context, sid string) (bool, error)
}

type memoryEntry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore is an in-process Store. It backs tests and single-node
// deployments that run without redis (SESSION_STORE=memory).
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(_ context.Context, sid string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = memoryEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, sid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sid]
	if !ok {
		return false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, sid)
		return false, nil
	}
	return true, nil
}

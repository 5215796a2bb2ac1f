package store

import (
	"context"
	"errors"
	"sync"

	"github.com/ShubhanginiSharma627/e-sign-app/core"
	"github.com/ShubhanginiSharma627/e-sign-app/ports"
)

// ErrNoToken is returned by Load when the store holds no record yet.
var ErrNoToken = errors.New("no cached token")

// MemoryStore is an in-memory implementation of the TokenStore interface
type MemoryStore struct {
	mu    sync.RWMutex
	token *core.CachedToken
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() ports.TokenStore {
	return &MemoryStore{}
}

// Load returns the held record, or ErrNoToken when empty.
func (s *MemoryStore) Load(ctx context.Context) (*core.CachedToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return nil, ErrNoToken
	}

	copied := *s.token
	return &copied, nil
}

// Save overwrites the held record.
func (s *MemoryStore) Save(ctx context.Context, token *core.CachedToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *token
	s.token = &copied
	return nil
}

// Package oauthstate stores the one-time state values of the OAuth redirect handshake.
package oauthstate

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"
	"vidshare/internal/errors"
)

// Generate returns a cryptographically secure random state string.
func Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate oauth state")
	}

	return hex.EncodeToString(buf), nil
}

type memoryEntry struct {
	value     service.OAuthState
	expiresAt time.Time
}

// MemoryStore keeps state in process memory. It only works with a single replica.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an in-process state store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Save stores state until ttl elapses and drops anything already expired.
func (s *MemoryStore) Save(_ context.Context, state string, value service.OAuthState, ttl time.Duration) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.entries[state] = memoryEntry{value: value, expiresAt: now.Add(ttl)}
	s.cleanupExpired(now)

	return nil
}

// Consume removes the state so it cannot be replayed.
func (s *MemoryStore) Consume(_ context.Context, state string) (*service.OAuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return nil, domainerrors.ErrOAuthStateInvalid
	}
	delete(s.entries, state)

	if s.now().After(entry.expiresAt) {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	value := entry.value

	return &value, nil
}

func (s *MemoryStore) cleanupExpired(now time.Time) {
	for state, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, state)
		}
	}
}

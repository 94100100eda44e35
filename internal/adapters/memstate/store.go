package memstate

// Package memstate is a map-backed ports.StateStore for unit tests and dev
// mode. TTLs are honored against an injectable clock.

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/campusware/campus-admin/internal/errors"
	"github.com/campusware/campus-admin/internal/ports"
)

type record struct {
	data   []byte
	expiry time.Time // zero means no expiry
}

// Store implements ports.StateStore in memory.
// Concurrency: methods are safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	items map[string]record
	now   func() time.Time
}

var _ ports.StateStore = (*Store)(nil)

// New creates an empty store using the real clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates a store with an injectable clock for tests.
func NewWithClock(now func() time.Time) *Store {
	return &Store{items: make(map[string]record), now: now}
}

// Load returns the value for key, or a not_found error.
func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[key]
	if !ok {
		return nil, apperrors.NotFound("state key not found")
	}
	if !rec.expiry.IsZero() && s.now().After(rec.expiry) {
		delete(s.items, key)
		return nil, apperrors.NotFound("state key expired")
	}
	out := make([]byte, len(rec.data))
	copy(out, rec.data)
	return out, nil
}

// Save stores data under key. ttl <= 0 means no expiration.
func (s *Store) Save(_ context.Context, key string, data []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiry time.Time
	if ttl > 0 {
		expiry = s.now().Add(ttl)
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.items[key] = record{data: stored, expiry: expiry}
	return nil
}

// Delete removes the given keys. Absent keys are ignored.
func (s *Store) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.items, key)
	}
	return nil
}

// Len returns the number of live records. Test helper.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

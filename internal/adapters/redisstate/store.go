package redisstate

// Package redisstate provides the Redis-backed durable client-state store.
// Each browser client's slots live under a common prefix, so sign-out in one
// tab invalidates every tab of that client on its next restore.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/campusware/campus-admin/internal/errors"
	"github.com/campusware/campus-admin/internal/ports"
)

const defaultPrefix = "clientstate:"

// Store is a Redis-based ports.StateStore for production use.
type Store struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.StateStore = (*Store)(nil)

// New creates a new Redis-based state store with the default key prefix.
func New(client redis.UniversalClient) *Store {
	return &Store{client: client, prefix: defaultPrefix}
}

// NewWithPrefix creates a Redis state store with a custom key prefix.
func NewWithPrefix(client redis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Load returns the value for key, or a not_found error.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, apperrors.NotFound("state key not found")
	}

	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("state key not found")
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

// Save stores data under key. ttl <= 0 stores without expiration.
func (s *Store) Save(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if key == "" {
		return apperrors.Validation("state key cannot be empty")
	}
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, s.prefix+key, data, ttl).Err()
}

// Delete removes the given keys in one round trip. Absent keys are ignored.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != "" {
			prefixed = append(prefixed, s.prefix+key)
		}
	}
	if len(prefixed) == 0 {
		return nil
	}
	return s.client.Del(ctx, prefixed...).Err()
}

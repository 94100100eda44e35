package redisstate

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/campusware/campus-admin/internal/errors"
	"github.com/campusware/campus-admin/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestStore_SaveAndLoad(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := New(client)
	ctx := context.Background()

	err := store.Save(ctx, "client-a:session", []byte(`{"token":"abc"}`), 30*time.Minute)
	require.NoError(t, err)

	data, err := store.Load(ctx, "client-a:session")
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc"}`, string(data))
}

func TestStore_LoadMissingKey(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := New(client)

	_, err := store.Load(context.Background(), "never-written")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestStore_LoadEmptyKey(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := New(client)

	_, err := store.Load(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestStore_SaveEmptyKey(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := New(client)

	err := store.Save(context.Background(), "", []byte("x"), time.Minute)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestStore_DeleteBatch(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := New(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "client-b:identity", []byte("i"), time.Minute))
	require.NoError(t, store.Save(ctx, "client-b:session", []byte("s"), time.Minute))

	// Both slots go in one round trip; absent keys are tolerated.
	err := store.Delete(ctx, "client-b:identity", "client-b:session", "client-b:never")
	require.NoError(t, err)

	_, err = store.Load(ctx, "client-b:identity")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	_, err = store.Load(ctx, "client-b:session")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestStore_DeleteNoKeys(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := New(client)

	assert.NoError(t, store.Delete(context.Background()))
	assert.NoError(t, store.Delete(context.Background(), ""))
}

func TestStore_TTLExpiration(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := New(client)
	ctx := context.Background()

	err := store.Save(ctx, "client-c:session", []byte("short"), 100*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	_, err = store.Load(ctx, "client-c:session")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewWithPrefix(client, "test-prefix:")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "client-d:session", []byte("p"), time.Minute))

	exists := client.Exists(ctx, "test-prefix:client-d:session").Val()
	assert.Equal(t, int64(1), exists)

	data, err := store.Load(ctx, "client-d:session")
	require.NoError(t, err)
	assert.Equal(t, []byte("p"), data)
}

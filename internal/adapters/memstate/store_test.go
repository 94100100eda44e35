package memstate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/campusware/campus-admin/internal/errors"
)

func TestStore_SaveAndLoad(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []byte("v"), 0))

	data, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)
}

func TestStore_LoadMissing(t *testing.T) {
	store := New()

	_, err := store.Load(context.Background(), "absent")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestStore_TTLExpiry(t *testing.T) {
	clock := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	store := NewWithClock(func() time.Time { return clock })
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []byte("v"), time.Minute))

	_, err := store.Load(ctx, "k")
	assert.NoError(t, err)

	clock = clock.Add(2 * time.Minute)
	_, err = store.Load(ctx, "k")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	assert.Zero(t, store.Len(), "expired records are removed on read")
}

func TestStore_Delete(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", []byte("1"), 0))
	require.NoError(t, store.Save(ctx, "b", []byte("2"), 0))

	require.NoError(t, store.Delete(ctx, "a", "b", "never-existed"))
	assert.Zero(t, store.Len())
}

func TestStore_DefensiveCopies(t *testing.T) {
	store := New()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, store.Save(ctx, "k", original, 0))
	original[0] = 'z'

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), loaded)

	loaded[0] = 'z'
	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

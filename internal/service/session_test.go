package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/campus-admin/internal/adapters/memstate"
	"github.com/campusware/campus-admin/internal/adapters/staticdir"
	"github.com/campusware/campus-admin/internal/domain/auth"
	apperrors "github.com/campusware/campus-admin/internal/errors"
	"github.com/campusware/campus-admin/internal/ports"
)

const testClient = "client-1"

func testDirectory() *staticdir.Directory {
	return staticdir.New([]staticdir.User{
		{Username: "amina", Password: "s3cret", DisplayName: "Amina Yusuf", Role: auth.RolePrincipal},
		{Username: "kofi", Password: "hunter2", DisplayName: "Kofi Mensah", Role: auth.RoleTeacher,
			Overrides: []auth.Permission{auth.PermissionReports}},
	})
}

func newSessionService(now func() time.Time) (*SessionService, *memstate.Store) {
	store := memstate.NewWithClock(now)
	svc := NewSessionService(SessionServiceOptions{
		Directory: testDirectory(),
		Store:     store,
		Now:       now,
	})
	return svc, store
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSessionService_SignInPersistsBothSlots(t *testing.T) {
	start := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	svc, store := newSessionService(fixedClock(start))
	ctx := context.Background()

	account, err := svc.SignIn(ctx, testClient, ports.Credentials{Username: "amina", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, "amina", account.Identity.ID)
	assert.Equal(t, auth.RolePrincipal, account.Identity.Role)
	assert.NotEmpty(t, account.Session.Token)
	assert.Equal(t, start, account.Session.IssuedAt)
	assert.Equal(t, start.Add(DefaultSessionTTL), account.Session.ExpiresAt)
	assert.Equal(t, 2, store.Len(), "identity and session slots are written together")
}

func TestSessionService_SignInInvalidCredentials(t *testing.T) {
	svc, store := newSessionService(time.Now)
	ctx := context.Background()

	tests := []struct {
		name string
		user string
		pass string
	}{
		{name: "wrong password", user: "amina", pass: "wrong"},
		{name: "unknown user", user: "nobody", pass: "s3cret"},
		{name: "empty", user: "", pass: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignIn(ctx, testClient, ports.Credentials{Username: tt.user, Password: tt.pass})
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidCredentials))
			assert.Zero(t, store.Len(), "failed sign-in must not persist state")
		})
	}
}

func TestSessionService_RestoreRoundTrip(t *testing.T) {
	start := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	svc, _ := newSessionService(fixedClock(start))
	ctx := context.Background()

	signedIn, err := svc.SignIn(ctx, testClient, ports.Credentials{Username: "kofi", Password: "hunter2"})
	require.NoError(t, err)

	restored, err := svc.Restore(ctx, testClient)
	require.NoError(t, err)
	assert.Equal(t, signedIn.Identity, restored.Identity)
	assert.Equal(t, signedIn.Session.Token, restored.Session.Token)
	assert.Equal(t, []auth.Permission{auth.PermissionReports}, restored.Identity.Overrides)
}

func TestSessionService_RestoreUnknownClient(t *testing.T) {
	svc, _ := newSessionService(time.Now)

	_, err := svc.Restore(context.Background(), "never-seen")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestSessionService_ExpiryBoundary(t *testing.T) {
	start := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	clock := start
	now := func() time.Time { return clock }
	svc, store := newSessionService(now)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, testClient, ports.Credentials{Username: "amina", Password: "s3cret"})
	require.NoError(t, err)

	// One millisecond before expiry: still valid.
	clock = start.Add(DefaultSessionTTL - time.Millisecond)
	_, err = svc.Restore(ctx, testClient)
	assert.NoError(t, err)

	// One millisecond past expiry: rejected, both slots cleared.
	clock = start.Add(DefaultSessionTTL + time.Millisecond)
	_, err = svc.Restore(ctx, testClient)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionExpired))
	assert.Zero(t, store.Len(), "expired state must be discarded in full")
}

func TestSessionService_CorruptSessionSlotClearsBoth(t *testing.T) {
	svc, store := newSessionService(time.Now)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, testClient, ports.Credentials{Username: "amina", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, testClient+sessionSlot, []byte("{not json"), 0))

	_, err = svc.Restore(ctx, testClient)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionExpired),
		"corruption is handled like expiry: clear and continue unauthenticated")
	assert.Zero(t, store.Len())
}

func TestSessionService_SessionWithoutIdentityClearsBoth(t *testing.T) {
	svc, store := newSessionService(time.Now)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, testClient, ports.Credentials{Username: "amina", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, testClient+identitySlot))

	_, err = svc.Restore(ctx, testClient)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionExpired))
	assert.Zero(t, store.Len())
}

func TestSessionService_SignOutClearsEverything(t *testing.T) {
	svc, store := newSessionService(time.Now)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, testClient, ports.Credentials{Username: "amina", Password: "s3cret"})
	require.NoError(t, err)
	svc.CachePut(testClient, "draft-form", "unsaved")

	require.NoError(t, svc.SignOut(ctx, testClient))

	assert.Zero(t, store.Len())
	_, cached := svc.CacheGet(testClient, "draft-form")
	assert.False(t, cached, "ephemeral cache must be cleared on sign-out")

	_, err = svc.Restore(ctx, testClient)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestSessionService_SignOutUnknownClientIsNoOp(t *testing.T) {
	svc, _ := newSessionService(time.Now)
	assert.NoError(t, svc.SignOut(context.Background(), ""))
	assert.NoError(t, svc.SignOut(context.Background(), "never-seen"))
}

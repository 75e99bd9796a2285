package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
	"github.com/atendo-hq/console-api/internal/ports"
	"github.com/atendo-hq/console-api/internal/testutil"
)

func TestTokenStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewTokenStoreWithPrefix(client, "test-token:", time.Minute)
	ctx := context.Background()

	sid := uuid.NewString()
	t.Cleanup(func() { _ = store.Clear(ctx, sid) })

	sess := domainauth.Session{
		AccessToken:  "at-123",
		RefreshToken: "rt-456",
		ExpiresAt:    time.Now().Add(time.Hour).UnixMilli(),
		OrgID:        "org-1",
		UserID:       "user-1",
	}

	require.NoError(t, store.Save(ctx, sid, sess))

	got, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestTokenStore_GetNonExistent(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewTokenStoreWithPrefix(client, "test-token:", time.Minute)

	_, err := store.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ports.ErrNoSession)
}

func TestTokenStore_Clear(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewTokenStoreWithPrefix(client, "test-token:", time.Minute)
	ctx := context.Background()

	sid := uuid.NewString()
	require.NoError(t, store.Save(ctx, sid, domainauth.Session{AccessToken: "at", ExpiresAt: 1}))
	require.NoError(t, store.Clear(ctx, sid))

	_, err := store.Get(ctx, sid)
	assert.ErrorIs(t, err, ports.ErrNoSession)

	// Clearing again (or a never-saved id) is a no-op.
	require.NoError(t, store.Clear(ctx, sid))
	require.NoError(t, store.Clear(ctx, ""))
}

func TestTokenStore_EmptySessionID(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewTokenStoreWithPrefix(client, "test-token:", time.Minute)
	ctx := context.Background()

	require.Error(t, store.Save(ctx, "", domainauth.Session{}))

	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ports.ErrNoSession)
}

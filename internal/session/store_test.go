package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/farmlink/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", 42, time.Hour))

	userID, ok, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	_, ok, err = store.Get(ctx, "sid-unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", 42, time.Hour))
	require.NoError(t, store.Delete(ctx, "sid-1"))

	_, ok, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an already-deleted session is not an error
	assert.NoError(t, store.Delete(ctx, "sid-1"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", 42, -time.Second))

	_, ok, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, ok, "expired sessions must not resolve")
}

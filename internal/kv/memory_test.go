package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theo/arena-forge/internal/kv"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", []byte("v1"), 0))
	got, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), got)

	// Last write wins.
	require.NoError(t, store.Set(ctx, "k", []byte("v2"), 0))
	got, _, _ = store.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, store.Delete(ctx, "k"))
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_TTLExpires(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short", []byte("x"), 10*time.Millisecond))

	_, found, err := store.Get(ctx, "short")
	require.NoError(t, err)
	assert.True(t, found)

	time.Sleep(20 * time.Millisecond)

	_, found, err = store.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_Incr(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	n, err := store.Incr(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.Incr(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryStore_IncrResetsAfterWindow(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Incr(ctx, "counter", 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	n, err := store.Incr(ctx, "counter", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

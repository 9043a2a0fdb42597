package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	c := NewCounters()
	clock := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }
	ctx := context.Background()

	t.Run("nonces", func(t *testing.T) {
		ok, _ := c.CheckAndSet(ctx, "pat-1", "n1", time.Minute)
		assert.True(t, ok)
		ok, _ = c.CheckAndSet(ctx, "pat-1", "n1", time.Minute)
		assert.False(t, ok)
		ok, _ = c.CheckAndSet(ctx, "doc-2", "n1", time.Minute)
		assert.True(t, ok)
	})

	t.Run("attempts slide with each increment", func(t *testing.T) {
		n, _ := c.Increment(ctx, "k", 10*time.Minute)
		assert.Equal(t, int64(1), n)
		clock = clock.Add(8 * time.Minute)
		n, _ = c.Increment(ctx, "k", 10*time.Minute)
		assert.Equal(t, int64(2), n)
		clock = clock.Add(8 * time.Minute)
		n, _ = c.Count(ctx, "k")
		assert.Equal(t, int64(2), n)
		clock = clock.Add(3 * time.Minute)
		n, _ = c.Count(ctx, "k")
		assert.Equal(t, int64(0), n)
	})

	t.Run("purchase replay", func(t *testing.T) {
		id := uuid.New()
		seen, _ := c.Seen(ctx, id, "0xabc")
		assert.False(t, seen)
		require.NoError(t, c.Remember(ctx, id, "0xabc", time.Hour))
		seen, _ = c.Seen(ctx, id, "0xabc")
		assert.True(t, seen)
		clock = clock.Add(time.Hour)
		seen, _ = c.Seen(ctx, id, "0xabc")
		assert.False(t, seen)
	})
}

func TestCounters_WritesSweepExpiredKeys(t *testing.T) {
	c := NewCounters()
	clock := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }
	ctx := context.Background()

	for _, nonce := range []string{"n1", "n2", "n3"} {
		ok, err := c.CheckAndSet(ctx, "pat-1", nonce, time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.NoError(t, c.Remember(ctx, uuid.New(), "0xabc", time.Minute))
	require.NoError(t, c.Remember(ctx, uuid.New(), "0xdef", time.Hour))
	assert.Len(t, c.entries, 5)

	clock = clock.Add(2 * time.Minute)
	ok, err := c.CheckAndSet(ctx, "pat-1", "n4", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, c.entries, 2, "only the live purchase key and the new nonce remain")

	clock = clock.Add(2 * time.Minute)
	require.NoError(t, c.Remember(ctx, uuid.New(), "0x123", time.Hour))
	assert.Len(t, c.entries, 2, "expired nonce is dropped by Remember")
}

func TestBlobStore(t *testing.T) {
	b := NewBlobStore()
	ctx := context.Background()

	id, err := b.Store(ctx, []byte("scan"))
	require.NoError(t, err)
	assert.Len(t, id, 64)

	again, err := b.Store(ctx, []byte("scan"))
	require.NoError(t, err)
	assert.Equal(t, id, again, "content addressed")

	got, err := b.Retrieve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("scan"), got)

	_, err = b.Retrieve(ctx, "missing")
	assert.Error(t, err)
}

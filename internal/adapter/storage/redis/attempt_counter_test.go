package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptCounter(t *testing.T) {
	s, client := newTestClient(t)
	counter := NewAttemptCounter(client)
	ctx := context.Background()
	key := "rec-1:res-3"

	n, err := counter.Count(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	for i := int64(1); i <= 3; i++ {
		n, err = counter.Increment(ctx, key, 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	n, err = counter.Count(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, 15*time.Minute, s.TTL("hrv:attempts:"+key))
}

func TestAttemptCounter_WindowSlides(t *testing.T) {
	s, client := newTestClient(t)
	counter := NewAttemptCounter(client)
	ctx := context.Background()
	key := "rec-1:res-3"

	_, err := counter.Increment(ctx, key, 10*time.Minute)
	require.NoError(t, err)
	s.FastForward(8 * time.Minute)
	_, err = counter.Increment(ctx, key, 10*time.Minute)
	require.NoError(t, err)
	s.FastForward(8 * time.Minute)

	n, err := counter.Count(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "each attempt refreshes the window")

	s.FastForward(3 * time.Minute)
	n, err = counter.Count(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

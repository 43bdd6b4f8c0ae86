package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisRepo(t *testing.T) (*RedisThrottleRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisThrottleRepository(client), mr
}

func TestRedisThrottleWithinLimit(t *testing.T) {
	repo, _ := newMiniredisRepo(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := repo.Allow(ctx, "client-1", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := repo.Allow(ctx, "client-1", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisThrottleWindowExpiry(t *testing.T) {
	repo, mr := newMiniredisRepo(t)
	ctx := context.Background()

	allowed, err := repo.Allow(ctx, "client-2", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = repo.Allow(ctx, "client-2", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	mr.FastForward(2 * time.Minute)

	allowed, err = repo.Allow(ctx, "client-2", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisThrottleNilClient(t *testing.T) {
	repo := NewRedisThrottleRepository(nil)

	_, err := repo.Allow(context.Background(), "x", 1, time.Minute)
	assert.Error(t, err)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryThrottleWithinLimit(t *testing.T) {
	repo := NewMemoryThrottleRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := repo.Allow(ctx, "1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := repo.Allow(ctx, "1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestMemoryThrottleKeysIndependent(t *testing.T) {
	repo := NewMemoryThrottleRepository()
	ctx := context.Background()

	allowed, err := repo.Allow(ctx, "a", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = repo.Allow(ctx, "a", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = repo.Allow(ctx, "b", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryThrottleWindowReset(t *testing.T) {
	repo := NewMemoryThrottleRepository()
	ctx := context.Background()

	allowed, err := repo.Allow(ctx, "c", 1, 20*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = repo.Allow(ctx, "c", 1, 20*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)

	allowed, err = repo.Allow(ctx, "c", 1, 20*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, allowed)
}

package repository

import (
	"context"
	"fmt"
	"time"

	"danubio/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisThrottleRepository counts submissions in Redis so limits survive
// restarts and apply across replicas.
type RedisThrottleRepository struct {
	client *redis.Client
}

// NewRedisClient creates a Redis client from config.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func NewRedisThrottleRepository(client *redis.Client) *RedisThrottleRepository {
	return &RedisThrottleRepository{client: client}
}

// Allow increments the windowed counter for key via INCR and sets the window
// TTL on the first hit.
func (r *RedisThrottleRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if r.client == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	redisKey := fmt.Sprintf("throttle:%s", key)
	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment throttle counter: %w", err)
	}

	if count == 1 {
		r.client.Expire(ctx, redisKey, window)
	}

	return count <= int64(limit), nil
}

// Ping verifies the Redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func Close(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}
	return nil
}

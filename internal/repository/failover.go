package repository

import (
	"context"
	"sync/atomic"
	"time"

	"danubio/internal/domain"

	"github.com/rs/zerolog"
)

// FailoverThrottleRepository serves from the primary (Redis) and falls back to
// the in-memory counter when the primary errors. It probes the primary again
// after a cooldown.
type FailoverThrottleRepository struct {
	primary   domain.ThrottleRepository
	fallback  domain.ThrottleRepository
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck atomic.Int64 // unix nanos of the last failed probe
}

const recoveryProbeInterval = time.Minute

func NewFailoverThrottleRepository(primary, fallback domain.ThrottleRepository, logger *zerolog.Logger) *FailoverThrottleRepository {
	return &FailoverThrottleRepository{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *FailoverThrottleRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if !r.isDown.Load() {
		allowed, err := r.primary.Allow(ctx, key, limit, window)
		if err == nil {
			return allowed, nil
		}
		r.logger.Error().Err(err).Msg("primary throttle repository failed, falling back to memory")
		r.isDown.Store(true)
		r.lastCheck.Store(time.Now().UnixNano())
	}

	if r.isDown.Load() && time.Since(time.Unix(0, r.lastCheck.Load())) > recoveryProbeInterval {
		allowed, err := r.primary.Allow(ctx, key, limit, window)
		if err == nil {
			r.isDown.Store(false)
			return allowed, nil
		}
		r.lastCheck.Store(time.Now().UnixNano())
	}

	return r.fallback.Allow(ctx, key, limit, window)
}

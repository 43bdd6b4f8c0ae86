package repository

import (
	"context"
	"sync"
	"time"
)

// MemoryThrottleRepository counts submissions in process memory. It is the
// fallback when no Redis is configured or Redis is down.
type MemoryThrottleRepository struct {
	mu       sync.Mutex
	counters map[string]*counterEntry
}

func NewMemoryThrottleRepository() *MemoryThrottleRepository {
	return &MemoryThrottleRepository{counters: make(map[string]*counterEntry)}
}

type counterEntry struct {
	count     int
	expiresAt time.Time
}

// Allow increments the counter for key and reports whether the count is still
// within limit for the current window.
func (r *MemoryThrottleRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	entry, ok := r.counters[key]
	if !ok || now.After(entry.expiresAt) {
		entry = &counterEntry{count: 1, expiresAt: now.Add(window)}
		r.counters[key] = entry
		return limit >= 1, nil
	}

	entry.count++
	return entry.count <= limit, nil
}

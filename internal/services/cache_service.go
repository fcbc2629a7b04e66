package services

import (
	"context"
	"time"
)

// Cache is the subset of the redis client the services need. A nil Cache is
// allowed everywhere; callers fall through to the database.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) (int64, error)
}

// Cache key prefixes. Mutations invalidate by prefix so a stale overview
// never outlives the write that made it stale.
const (
	cacheKeyDashboardPrefix = "rideadmin:dashboard:"
	cacheKeyFinancePrefix   = "rideadmin:finance:"
)

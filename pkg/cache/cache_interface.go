package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Allows swapping implementations (Redis, in-memory fake for tests).
type Cache interface {
	// Get reads data from cache and unmarshals it into dest.
	// Returns: (found bool, error)
	// - found = true: cache hit, data unmarshaled into dest
	// - found = false: cache miss, dest is left untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores data in cache with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from cache. Deleting an absent key is not an error.
	Delete(ctx context.Context, keys ...string) error

	// FlushAll wipes the entire cache namespace
	FlushAll(ctx context.Context) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}

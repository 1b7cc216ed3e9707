package cache

import (
	"context"
	"time"
)

// Store is a small key-value cache with expiration. Lookups report a miss
// instead of an error when the key is absent or expired.
type Store interface {
	// Get retrieves a value by key; the bool reports a hit
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}

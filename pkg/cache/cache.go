// Package cache stores compiled schema snapshots between CLI runs.
//
// Keys come from [GraphKey], which hashes the manifest contents, so an edited
// manifest never hits a stale entry.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found. Expired and
	// corrupt entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

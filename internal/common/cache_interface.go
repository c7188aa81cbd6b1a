package common

import "time"

// CacheInterface is the contract the analytics endpoints cache behind.
// Implementations may hold values in-process or in Redis.
type CacheInterface interface {
	// Set stores a value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the cached value and true, or nil and false when absent.
	Get(key string) (interface{}, bool)

	// Delete drops a key.
	Delete(key string)

	// GetOrSet returns the cached value, loading and storing it on a miss.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any underlying connections.
	Close() error
}

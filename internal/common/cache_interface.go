package common

import "time"

// CacheInterface defines the contract for cache implementations.
// Values are stored JSON-encoded so both backends hand back the same types.
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value any, duration time.Duration)

	// Get decodes the cached value into dest and reports whether it was found
	Get(key string, dest any) bool

	// Delete removes a value from cache by key
	Delete(key string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}

// GetOrSet returns the cached value for key, or loads it and caches the result.
// Loader errors are returned as-is and nothing is cached.
func GetOrSet[T any](c CacheInterface, key string, duration time.Duration, loader func() (T, error)) (T, error) {
	var cached T
	if c.Get(key, &cached) {
		recordCacheLookup(true)
		return cached, nil
	}
	recordCacheLookup(false)

	val, err := loader()
	if err != nil {
		return val, err
	}
	c.Set(key, val, duration)
	return val, nil
}

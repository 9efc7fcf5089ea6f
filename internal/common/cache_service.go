package common

import (
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"

	"mtfuji-paragliding/fujipsystem/internal/logging"
)

// CacheService is the in-process cache used when Redis is not configured.
type CacheService struct {
	cache *cache.Cache
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	c := cache.New(defaultExpiration, cleanUpInterval)
	return &CacheService{cache: c}
}

func (cs *CacheService) Set(key string, value any, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("cache: failed to marshal value", "key", key, "error", err)
		return
	}
	cs.cache.Set(key, data, duration)
}

func (cs *CacheService) Get(key string, dest any) bool {
	val, found := cs.cache.Get(key)
	if !found {
		return false
	}
	data, ok := val.([]byte)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logging.Warn("cache: failed to unmarshal value", "key", key, "error", err)
		return false
	}
	return true
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// Close closes the cache (no-op for in-memory cache)
func (cs *CacheService) Close() error {
	return nil
}

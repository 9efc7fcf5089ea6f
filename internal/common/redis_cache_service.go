package common

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"mtfuji-paragliding/fujipsystem/internal/logging"
)

const redisOpTimeout = 2 * time.Second

// RedisCacheService implements CacheInterface using Redis
type RedisCacheService struct {
	client *redis.Client
}

// Ensure RedisCacheService implements CacheInterface
var _ CacheInterface = (*RedisCacheService)(nil)

func NewRedisCacheService(client *redis.Client) *RedisCacheService {
	return &RedisCacheService{client: client}
}

// Set stores a value in Redis with the given key and duration
func (r *RedisCacheService) Set(key string, value any, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("redis cache: failed to marshal value", "key", key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Set(ctx, key, data, duration).Err(); err != nil {
		logging.Warn("redis cache: failed to set key", "key", key, "error", err)
	}
}

// Get decodes the value stored under key. Redis failures count as a miss.
func (r *RedisCacheService) Get(key string, dest any) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		logging.Warn("redis cache: failed to get key", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logging.Warn("redis cache: failed to unmarshal value", "key", key, "error", err)
		return false
	}
	return true
}

// Delete removes a value from Redis by key
func (r *RedisCacheService) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Del(ctx, key).Err(); err != nil {
		logging.Warn("redis cache: failed to delete key", "key", key, "error", err)
	}
}

// Ping is used by the health check.
func (r *RedisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisCacheService) Close() error {
	return r.client.Close()
}

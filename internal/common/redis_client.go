package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"mtfuji-paragliding/fujipsystem/internal/logging"
)

// NewRedisClient builds a pooled client. A failed ping is logged and the client is
// still returned; the pool reconnects on its own.
func NewRedisClient(addr, password string) *redis.Client {
	redisDB := 0 // Default DB

	logging.Info("initializing redis client", "addr", addr, "db", redisDB)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           redisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("failed to ping redis", "addr", addr, "error", err)
		return client
	}

	logging.Info("connected to redis", "addr", addr)
	return client
}

package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the Redis client backing the reference-data cache.
// Returns nil when REDIS_ADDR is unset or the server does not answer; the
// caller runs uncached in that case.
//
// Supported env vars:
//   - REDIS_ADDR (e.g. redis:6379; empty disables caching)
//   - REDIS_PASSWORD (optional)
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[database][redis] ping failed addr=%s err=%v, running without cache", addr, err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}

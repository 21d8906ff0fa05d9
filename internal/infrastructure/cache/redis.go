// Package cache builds the Redis client shared by the rate limiter.
package cache

import (
	"context"
	"time"

	"rudereminder/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects and pings Redis. It returns nil when Addr is empty
// or the server is unreachable; callers degrade to running without Redis.
func NewRedisClient(cfg Config, log logger.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, continuing without it", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}
	log.Info("Connected to redis", "addr", cfg.Addr)
	return client
}

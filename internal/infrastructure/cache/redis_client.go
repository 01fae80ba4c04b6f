package cache

import (
	"context"
	"fmt"
	"gemstore/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a client and pings it so a bad REDIS_ADDR fails at startup.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

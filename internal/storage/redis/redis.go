package redis

import (
	"context"
	"debaren/internal/config"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Connect opens a client for cfg and verifies it with PING.
func Connect(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.Address, err)
	}

	return client, nil
}

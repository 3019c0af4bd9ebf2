// Package cache builds the shared Redis client.
package cache

import (
	"context"
	"log/slog"

	"vidshare/config"
	"vidshare/internal/domain/lifecycle"
	"vidshare/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewRedisClient connects to Redis when configured. It returns a nil client otherwise.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (redis.UniversalClient, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "redis ping")
			}
			logger.Info("Connected to Redis", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

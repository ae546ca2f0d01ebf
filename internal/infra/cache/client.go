package cache

import (
	"context"
	"log/slog"
	"time"

	"fitstudio/internal/pkg/config"
	"fitstudio/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewClient returns nil when redis is disabled.
func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	if !cfg.Enabled {
		slog.Info("redis cache disabled")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}

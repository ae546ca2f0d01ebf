package bootstrap

import (
	"context"

	"fitstudio/internal/infra/cache"
	"fitstudio/internal/pkg/config"
	"fitstudio/internal/usecase/commands"
	"fitstudio/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewClassCatalogCache,
			fx.As(new(queries.ClassCatalogCache)),
			fx.As(new(commands.CatalogInvalidator)),
		),
	),
)

// NewRedisClient returns a nil client when REDIS_ENABLED is false.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.NewClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewClassCatalogCache(client *redis.Client, cfg config.Config) *cache.ClassCatalogCache {
	return cache.NewClassCatalogCache(client, cfg.Redis.CacheTTL)
}

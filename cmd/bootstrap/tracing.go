package bootstrap

import (
	"context"
	"log/slog"

	"fitstudio/internal/pkg/config"
	"fitstudio/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := tracing.InitTracer(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	if cfg.Tracing.Enabled {
		logger.Info("トレーシングを有効化しました", "endpoint", cfg.Tracing.Endpoint, "service", cfg.Tracing.ServiceName)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}

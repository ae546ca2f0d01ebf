package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"fitstudio/internal/handler/middleware"
	"fitstudio/internal/infra/db"
	"fitstudio/internal/pkg/config"
	"fitstudio/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate applies migrations/ with the atlas CLI, or in-process with -local.
//
//	go run ./cmd/migrate -dir migrations          # apply pending files
//	go run ./cmd/migrate -dir migrations -status  # show revision state only
//	go run ./cmd/migrate -dir migrations -local   # no atlas binary needed
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	statusOnly := flag.Bool("status", false, "print status without applying")
	local := flag.Bool("local", false, "apply in-process, tracking revisions in schema_migrations")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	apply := func() error { return run(ctx, logger, cfg.DB, *dir, *atlasBin, *statusOnly) }
	if *local {
		apply = func() error { return runLocal(ctx, logger, cfg.DB, *dir) }
	}

	if err := apply(); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err, "stack", errs.ExtractStackLines(err, 8))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dbCfg config.DBConfig, dir, atlasBin string, statusOnly bool) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return errs.Wrap(err, "failed to prepare atlas working dir")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to create atlas client")
	}

	url := dbCfg.BuildDSN()

	if statusOnly {
		status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
		if err != nil {
			return errs.Wrap(err, "failed to read migration status")
		}
		logger.Info("マイグレーション状態",
			"current", status.Current,
			"next", status.Next,
			"pending", len(status.Pending),
		)
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	for _, f := range res.Applied {
		logger.Info("マイグレーション実行完了", "file", f.Name)
	}
	logger.Info("マイグレーションが完了しました", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
	return nil
}

func runLocal(ctx context.Context, logger *slog.Logger, dbCfg config.DBConfig, dir string) error {
	migrations, err := db.LoadMigrations(dir)
	if err != nil {
		return err
	}

	pool, closePool, err := db.Connect(dbCfg)
	if err != nil {
		return err
	}
	defer closePool()

	applied, err := migrations.Apply(ctx, pool)
	if err != nil {
		return err
	}
	logger.Info("マイグレーションが完了しました", "applied", len(applied), "total", len(migrations.Names()))
	return nil
}

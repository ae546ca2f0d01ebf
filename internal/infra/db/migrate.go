package db

import (
	"context"
	"log/slog"
	"strings"

	"fitstudio/internal/pkg/errs"

	"ariga.io/atlas/sql/migrate"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createRevisionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version     TEXT PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrations is an atlas migration directory whose files matched atlas.sum
// when it was loaded.
type Migrations struct {
	files []migrate.File
}

func LoadMigrations(path string) (*Migrations, error) {
	dir, err := migrate.NewLocalDir(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open migration directory")
	}
	if err := migrate.Validate(dir); err != nil {
		return nil, errs.Wrap(err, "migration directory does not match atlas.sum")
	}

	files, err := dir.Files()
	if err != nil {
		return nil, errs.Wrap(err, "failed to list migration files")
	}
	return &Migrations{files: files}, nil
}

func (m *Migrations) Names() []string {
	names := make([]string, 0, len(m.files))
	for _, f := range m.files {
		names = append(names, f.Name())
	}
	return names
}

// Apply runs every file not yet recorded in schema_migrations, in version
// order and one transaction per file. It returns the names it applied.
func (m *Migrations) Apply(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	if _, err := pool.Exec(ctx, createRevisionTable); err != nil {
		return nil, errs.Wrap(err, "failed to create schema_migrations")
	}

	var applied []string
	for _, f := range m.files {
		ran := false
		err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			var done bool
			if err := tx.QueryRow(ctx,
				"SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", f.Version(),
			).Scan(&done); err != nil {
				return err
			}
			if done {
				return nil
			}

			if _, err := tx.Exec(ctx, string(f.Bytes())); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				"INSERT INTO schema_migrations (version, description) VALUES ($1, $2)", f.Version(), f.Desc(),
			); err != nil {
				return err
			}
			ran = true
			return nil
		})
		if err != nil {
			return applied, errs.Wrap(err, "failed to apply migration "+f.Name())
		}
		if ran {
			slog.Info("マイグレーション実行完了", "file", f.Name())
			applied = append(applied, f.Name())
		}
	}
	return applied, nil
}

// Seed re-runs the seed_* files regardless of schema_migrations. It restores
// the reference catalog after its tables were truncated.
func (m *Migrations) Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, f := range m.files {
		if !strings.HasPrefix(f.Desc(), "seed_") {
			continue
		}
		if _, err := pool.Exec(ctx, string(f.Bytes())); err != nil {
			return errs.Wrap(err, "failed to run seed "+f.Name())
		}
	}
	return nil
}

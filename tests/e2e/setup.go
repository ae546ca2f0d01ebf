//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"fitstudio/cmd/bootstrap"
	"fitstudio/cmd/bootstrap/components"
	"fitstudio/internal/infra/db"
	"fitstudio/internal/pkg/config"
	"fitstudio/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgImage    = "postgres:17"
	pgUser     = "studio"
	pgPassword = "studio-pass"
	pgPort     = "5432/tcp"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

// Env is one test process's view of the stack: its own database inside the
// shared container, migrated from migrations/, and the fx-built router.
type Env struct {
	Pool       *pgxpool.Pool
	Router     *gin.Engine
	Config     config.Config
	Migrations *db.Migrations
}

func setupEnv(t *testing.T) Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	host, port := postgresEndpoint(t)
	dbCfg := createDatabase(t, host, port)

	pool, closePool, err := db.Connect(dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	migrations := migrate(t, pool)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	router := startApp(t, pool, cfg)

	slog.Info("E2E環境の準備が完了しました", "host", host, "port", port.Port(), "database", dbCfg.DBName)
	return Env{Pool: pool, Router: router, Config: cfg, Migrations: migrations}
}

// postgresEndpoint starts the shared container on first use.
func postgresEndpoint(t *testing.T) (string, nat.Port) {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        pgImage,
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// durability is irrelevant for throwaway databases
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "fitstudio-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, nat.Port(pgPort))
	require.NoError(t, err)
	return host, port
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// createDatabase gives the calling process its own database and drops it on cleanup.
func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	t.Helper()

	name := "studio_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// concurrent CREATE DATABASE calls can collide on template1
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}
}

// migrate applies the whole migrations/ directory, seed included, through the
// same runner as `cmd/migrate -local`.
func migrate(t *testing.T, pool *pgxpool.Pool) *db.Migrations {
	t.Helper()

	migrations, err := db.LoadMigrations(MigrationsDir(t))
	require.NoError(t, err, "マイグレーションの読み込みに失敗")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	applied, err := migrations.Apply(ctx, pool)
	require.NoError(t, err, "データベースマイグレーションに失敗")
	require.Equal(t, migrations.Names(), applied, "未適用のマイグレーションがあります")

	return migrations
}

// MigrationsDir finds migrations/ by walking up from the package under test.
func MigrationsDir(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations")
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod が見つかりません")
		dir = parent
	}
}

func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		bootstrap.TracingModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// SharedSuite is embedded by every e2e suite. Each subtest starts from a
// freshly seeded database.
type SharedSuite struct {
	suite.Suite
	Router     *gin.Engine
	DB         *pgxpool.Pool
	Config     config.Config
	Migrations *db.Migrations
}

func (s *SharedSuite) SetupSuite() {
	env := setupEnv(s.T())
	s.Router = env.Router
	s.DB = env.Pool
	s.Config = env.Config
	s.Migrations = env.Migrations
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB, s.Migrations), "データベースの初期化に失敗")
}

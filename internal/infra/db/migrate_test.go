//go:build unit

package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"fitstudio/internal/infra/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsDir = "../../../migrations"

// copyMigrations copies the repository's migration directory into a temp dir.
func copyMigrations(t *testing.T) string {
	t.Helper()

	dst := t.TempDir()
	entries, err := os.ReadDir(migrationsDir)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(migrationsDir, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dst, e.Name()), data, 0o644))
	}
	return dst
}

func TestLoadMigrations(t *testing.T) {
	t.Run("atlas.sumと一致するディレクトリ", func(t *testing.T) {
		m, err := db.LoadMigrations(migrationsDir)

		require.NoError(t, err)
		assert.Equal(t, []string{"001_initial_schema.sql", "002_seed_catalog.sql"}, m.Names())
	})

	t.Run("改変されたファイルは拒否", func(t *testing.T) {
		dir := copyMigrations(t)
		f, err := os.OpenFile(filepath.Join(dir, "002_seed_catalog.sql"), os.O_APPEND|os.O_WRONLY, 0o644)
		require.NoError(t, err)
		_, err = f.WriteString("\nDELETE FROM classes;\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, err = db.LoadMigrations(dir)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "atlas.sum")
	})

	t.Run("atlas.sumがない", func(t *testing.T) {
		dir := copyMigrations(t)
		require.NoError(t, os.Remove(filepath.Join(dir, "atlas.sum")))

		_, err := db.LoadMigrations(dir)

		require.Error(t, err)
	})

	t.Run("存在しないディレクトリ", func(t *testing.T) {
		_, err := db.LoadMigrations(filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
	})
}

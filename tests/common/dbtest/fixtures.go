//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fitstudio/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, phone, password_hash, subscription_type, role, is_active)
		VALUES ($1, $2, $3, $4, $5, 'monthly', $6, true) ON CONFLICT (email) DO NOTHING`,
		userID, "Test "+role, email, "+7 900 000-00-00", testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestClass inserts a Monday 08:00 yoga class with the given capacity.
func CreateTestClass(t *testing.T, db DBLike, name string, capacity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `INSERT INTO classes (name, description, type, trainer_id, day_of_week, start_time, duration_min, capacity, booked_count, price_cents)
		VALUES ($1, 'test class', 'yoga', (SELECT id FROM trainers ORDER BY id LIMIT 1), 1, '08:00', 60, $2, 0, 1000)
		RETURNING id`, name, capacity).Scan(&id)
	require.NoError(t, err)
	return id
}

func BookedCount(t *testing.T, db DBLike, classID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT booked_count FROM classes WHERE id = $1", classID).Scan(&n)
	require.NoError(t, err)
	return n
}

func ActiveBookings(t *testing.T, db DBLike, classID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE class_id = $1 AND status = 'active'", classID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except the revision log and reruns the seed
// migrations, leaving the database as a fresh migrate would.
func ResetDB(pool *pgxpool.Pool, migrations *db.Migrations) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return migrations.Seed(ctx, pool)
}

//go:build e2e

package migrations_test

import (
	"context"
	"testing"

	"fitstudio/tests/common/dbtest"
	"fitstudio/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type migrationsSuite struct {
	e2e.SharedSuite
}

func TestMigrationsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(migrationsSuite))
}

func (s *migrationsSuite) TestApplied() {
	ctx := context.Background()

	s.Run("全ファイルが記録されている", func() {
		rows, err := s.DB.Query(ctx, "SELECT version, description FROM schema_migrations ORDER BY version")
		s.Require().NoError(err)
		defer rows.Close()

		var got [][2]string
		for rows.Next() {
			var v, d string
			s.Require().NoError(rows.Scan(&v, &d))
			got = append(got, [2]string{v, d})
		}
		s.Require().NoError(rows.Err())
		s.Equal([][2]string{{"001", "initial_schema"}, {"002", "seed_catalog"}}, got)
	})

	s.Run("再適用は何もしない", func() {
		applied, err := s.Migrations.Apply(ctx, s.DB)
		s.Require().NoError(err)
		s.Empty(applied)
	})
}

func (s *migrationsSuite) TestSeededCatalog() {
	ctx := context.Background()

	s.Run("シードのクラスとトレーナーが入っている", func() {
		var classes, trainers, booked int
		s.Require().NoError(s.DB.QueryRow(ctx, "SELECT count(*), coalesce(sum(booked_count), 0) FROM classes").Scan(&classes, &booked))
		s.Require().NoError(s.DB.QueryRow(ctx, "SELECT count(*) FROM trainers").Scan(&trainers))

		s.Equal(8, classes)
		s.Equal(4, trainers)
		s.Zero(booked)
	})

	s.Run("全クラスにトレーナーが割り当てられている", func() {
		var orphans int
		s.Require().NoError(s.DB.QueryRow(ctx, "SELECT count(*) FROM classes WHERE trainer_id IS NULL").Scan(&orphans))
		s.Zero(orphans)
	})

	s.Run("リセット後もシードが復元される", func() {
		dbtest.CreateTestClass(s.T(), s.DB, "Extra", 5)
		s.Require().NoError(dbtest.ResetDB(s.DB, s.Migrations))

		var classes int
		s.Require().NoError(s.DB.QueryRow(ctx, "SELECT count(*) FROM classes").Scan(&classes))
		s.Equal(8, classes)
	})
}

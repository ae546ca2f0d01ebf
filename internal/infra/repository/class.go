package repository

import (
	"context"

	"fitstudio/internal/domain/class"
	"fitstudio/internal/infra"
	sqlc "fitstudio/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
)

type ClassWriteQueries interface {
	GetClassForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Classes, error)
	UpdateClassBookedCount(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateClassBookedCountParams) (int64, error)
}

type ClassRepository struct {
	queries ClassWriteQueries
	db      sqlc.DBTX
}

func NewClassRepository(queries ClassWriteQueries, db sqlc.DBTX) *ClassRepository {
	return &ClassRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClassRepository) LockByID(ctx context.Context, id int64) (*class.ClassSession, error) {
	row, err := r.queries.GetClassForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock class", err)
	}

	session, err := classFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored class is invalid", err, infra.KindDBFailure)
	}
	return session, nil
}

func (r *ClassRepository) SaveBookedCount(ctx context.Context, c *class.ClassSession) error {
	affected, err := r.queries.UpdateClassBookedCount(ctx, r.db, sqlc.UpdateClassBookedCountParams{
		ID:          c.ID(),
		BookedCount: int32(c.BookedCount()), // #nosec G115 -- bounded by capacity
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booked count", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("class not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func classFromRow(row sqlc.Classes) (*class.ClassSession, error) {
	classType, err := class.NewType(row.Type)
	if err != nil {
		return nil, err
	}
	day, err := class.NewWeekday(int(row.DayOfWeek))
	if err != nil {
		return nil, err
	}
	start, err := class.NewStartTime(row.StartTime)
	if err != nil {
		return nil, err
	}

	return class.NewClassSession(
		row.ID,
		row.Name,
		classType,
		day,
		start,
		int(row.DurationMin),
		int(row.Capacity),
		int(row.BookedCount),
	)
}

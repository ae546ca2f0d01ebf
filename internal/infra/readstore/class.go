package readstore

import (
	"context"

	"fitstudio/internal/domain/class"
	"fitstudio/internal/infra"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/pkg/pgconv"
	"fitstudio/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ClassReadQueries interface {
	ListClasses(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListClassesRow, error)
	GetClassByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetClassByIDRow, error)
}

type ClassReadStore struct {
	queries ClassReadQueries
	db      sqlc.DBTX
}

func NewClassReadStore(queries ClassReadQueries, db sqlc.DBTX) *ClassReadStore {
	return &ClassReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClassReadStore) List(ctx context.Context) ([]queries.ClassView, error) {
	rows, err := r.queries.ListClasses(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list classes", err)
	}

	views := make([]queries.ClassView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toClassView(sqlc.GetClassByIDRow(row)))
	}
	return views, nil
}

func (r *ClassReadStore) FindByID(ctx context.Context, id int64) (*queries.ClassView, error) {
	row, err := r.queries.GetClassByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find class", err)
	}

	view := toClassView(row)
	return &view, nil
}

func toClassView(row sqlc.GetClassByIDRow) queries.ClassView {
	view := queries.ClassView{
		ID:             row.ID,
		Name:           row.Name,
		Description:    pgconv.TextOrEmpty(row.Description),
		Type:           row.Type,
		TrainerID:      int64PtrFromPgtype(row.TrainerID),
		TrainerName:    pgconv.TextOrEmpty(row.TrainerName),
		DayOfWeek:      row.DayOfWeek,
		StartTime:      row.StartTime,
		DurationMin:    row.DurationMin,
		Capacity:       row.Capacity,
		BookedCount:    row.BookedCount,
		AvailableSpots: row.Capacity - row.BookedCount,
		PriceCents:     row.PriceCents,
	}
	if day, err := class.NewWeekday(int(row.DayOfWeek)); err == nil {
		view.DayName = day.String()
	}
	return view
}

func int64PtrFromPgtype(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

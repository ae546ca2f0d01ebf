package readstore

import (
	"context"

	"fitstudio/internal/infra"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/pkg/pgconv"
	"fitstudio/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProgressReadQueries interface {
	ListProgressByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListProgressByUserParams) ([]sqlc.UserProgress, error)
}

type ProgressReadStore struct {
	queries ProgressReadQueries
	db      sqlc.DBTX
}

func NewProgressReadStore(queries ProgressReadQueries, db sqlc.DBTX) *ProgressReadStore {
	return &ProgressReadStore{queries: queries, db: db}
}

func (r *ProgressReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]queries.ProgressView, error) {
	rows, err := r.queries.ListProgressByUser(ctx, r.db, sqlc.ListProgressByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list progress entries", err)
	}

	views := make([]queries.ProgressView, 0, len(rows))
	for _, row := range rows {
		weight, err := pgconv.Float64PtrFromPgtype(row.WeightKg)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored weight", err, infra.KindDBFailure)
		}
		height, err := pgconv.Float64PtrFromPgtype(row.HeightCm)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored height", err, infra.KindDBFailure)
		}
		views = append(views, queries.ProgressView{
			ID:           row.ID,
			WeightKg:     weight,
			HeightCm:     height,
			Measurements: pgconv.TextOrEmpty(row.Measurements),
			Notes:        pgconv.TextOrEmpty(row.Notes),
			RecordedAt:   pgconv.TimeFromPgtype(row.RecordedAt),
		})
	}
	return views, nil
}

package repository

import (
	"context"

	"fitstudio/internal/domain/progress"
	"fitstudio/internal/infra"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProgressWriteQueries interface {
	CreateProgressEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProgressEntryParams) (uuid.UUID, error)
}

type ProgressRepository struct {
	queries ProgressWriteQueries
	db      sqlc.DBTX
}

func NewProgressRepository(queries ProgressWriteQueries, db sqlc.DBTX) *ProgressRepository {
	return &ProgressRepository{queries: queries, db: db}
}

func (r *ProgressRepository) Create(ctx context.Context, e *progress.Entry) error {
	_, err := r.queries.CreateProgressEntry(ctx, r.db, sqlc.CreateProgressEntryParams{
		ID:           e.ID(),
		UserID:       e.UserID(),
		WeightKg:     pgconv.Float64PtrToPgtype(e.WeightKg()),
		HeightCm:     pgconv.Float64PtrToPgtype(e.HeightCm()),
		Measurements: pgconv.EmptyToNullText(e.Measurements()),
		Notes:        pgconv.EmptyToNullText(e.Notes()),
		RecordedAt:   pgconv.TimeToPgtype(e.RecordedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create progress entry", err)
	}
	return nil
}

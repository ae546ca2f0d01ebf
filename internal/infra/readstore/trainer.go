package readstore

import (
	"context"

	"fitstudio/internal/infra"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/pkg/pgconv"
	"fitstudio/internal/usecase/queries"
)

type TrainerReadQueries interface {
	ListTrainers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Trainers, error)
}

type TrainerReadStore struct {
	queries TrainerReadQueries
	db      sqlc.DBTX
}

func NewTrainerReadStore(queries TrainerReadQueries, db sqlc.DBTX) *TrainerReadStore {
	return &TrainerReadStore{queries: queries, db: db}
}

func (r *TrainerReadStore) List(ctx context.Context) ([]queries.TrainerView, error) {
	rows, err := r.queries.ListTrainers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list trainers", err)
	}

	views := make([]queries.TrainerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.TrainerView{
			ID:              row.ID,
			Name:            row.Name,
			Specialization:  row.Specialization,
			ExperienceYears: row.ExperienceYears,
			Bio:             pgconv.TextOrEmpty(row.Bio),
			PhotoURL:        pgconv.TextOrEmpty(row.PhotoUrl),
		})
	}
	return views, nil
}

package queries

import "context"

type TrainerReadStore interface {
	List(ctx context.Context) ([]TrainerView, error)
}

type TrainerQueries interface {
	List(ctx context.Context) ([]TrainerView, error)
}

type trainerQueriesImpl struct {
	readStore TrainerReadStore
}

func NewTrainerQueries(readStore TrainerReadStore) TrainerQueries {
	return &trainerQueriesImpl{readStore: readStore}
}

func (q *trainerQueriesImpl) List(ctx context.Context) ([]TrainerView, error) {
	return q.readStore.List(ctx)
}

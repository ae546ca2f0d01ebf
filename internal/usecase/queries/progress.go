package queries

import (
	"context"

	"github.com/google/uuid"
)

const (
	DefaultProgressLimit = 50
	MaxProgressLimit     = 200
)

type ProgressReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]ProgressView, error)
}

type ProgressQueries interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]ProgressView, error)
}

type progressQueriesImpl struct {
	readStore ProgressReadStore
}

func NewProgressQueries(readStore ProgressReadStore) ProgressQueries {
	return &progressQueriesImpl{readStore: readStore}
}

func (q *progressQueriesImpl) List(ctx context.Context, userID uuid.UUID, limit int) ([]ProgressView, error) {
	if limit <= 0 {
		limit = DefaultProgressLimit
	}
	limit = min(limit, MaxProgressLimit)
	return q.readStore.ListByUser(ctx, userID, int32(limit)) // #nosec G115 -- clamped above
}

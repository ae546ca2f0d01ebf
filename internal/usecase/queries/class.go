package queries

import (
	"context"
	"log/slog"

	"fitstudio/internal/infra"
	"fitstudio/internal/pkg/errs"
)

var ErrClassNotFound = errs.New("class not found")

type ClassReadStore interface {
	List(ctx context.Context) ([]ClassView, error)
	FindByID(ctx context.Context, id int64) (*ClassView, error)
}

// ClassCatalogCache holds the full class list between writes. Entries are
// keyed by a version that every invalidation bumps, so a list read from the
// database before an invalidation can never be served after it.
type ClassCatalogCache interface {
	Version(ctx context.Context) (int64, error)
	GetAll(ctx context.Context, version int64) ([]ClassView, bool, error)
	SetAll(ctx context.Context, version int64, classes []ClassView) error
}

type ClassQueries interface {
	List(ctx context.Context) ([]ClassView, error)
	GetByID(ctx context.Context, id int64) (*ClassView, error)
}

type classQueriesImpl struct {
	readStore ClassReadStore
	cache     ClassCatalogCache
}

func NewClassQueries(readStore ClassReadStore, cache ClassCatalogCache) ClassQueries {
	return &classQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

// List serves from the cache when possible. Cache failures fall through to the database.
func (q *classQueriesImpl) List(ctx context.Context) ([]ClassView, error) {
	// the version must be read before the database
	version, err := q.cache.Version(ctx)
	if err != nil {
		slog.Warn("class catalog cache version read failed", "error", err.Error())
		return q.readStore.List(ctx)
	}

	if cached, ok, err := q.cache.GetAll(ctx, version); err != nil {
		slog.Warn("class catalog cache read failed", "error", err.Error())
	} else if ok {
		return cached, nil
	}

	classes, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := q.cache.SetAll(ctx, version, classes); err != nil {
		slog.Warn("class catalog cache write failed", "error", err.Error())
	}
	return classes, nil
}

func (q *classQueriesImpl) GetByID(ctx context.Context, id int64) (*ClassView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return view, nil
}

//go:build unit

package queries_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fitstudio/internal/infra"
	"fitstudio/internal/usecase/queries"
	"fitstudio/tests/common/builder"
	queriesmock "fitstudio/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClassQueries_List(t *testing.T) {
	catalog := []queries.ClassView{
		builder.NewClassBuilder().WithID(1).BuildReadModel(),
		builder.NewClassBuilder().WithID(2).WithName("Power Pilates").WithType("pilates").BuildReadModel(),
	}

	t.Run("キャッシュヒット: DBを読まない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		cache := queriesmock.NewMockClassCatalogCache(ctrl)
		cache.EXPECT().Version(gomock.Any()).Return(int64(3), nil)
		cache.EXPECT().GetAll(gomock.Any(), int64(3)).Return(catalog, true, nil)

		got, err := queries.NewClassQueries(store, cache).List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, catalog, got)
	})

	t.Run("キャッシュミス: DBから読み同じバージョンへ書く", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		cache := queriesmock.NewMockClassCatalogCache(ctrl)
		gomock.InOrder(
			cache.EXPECT().Version(gomock.Any()).Return(int64(7), nil),
			cache.EXPECT().GetAll(gomock.Any(), int64(7)).Return(nil, false, nil),
			store.EXPECT().List(gomock.Any()).Return(catalog, nil),
			cache.EXPECT().SetAll(gomock.Any(), int64(7), catalog).Return(nil),
		)

		got, err := queries.NewClassQueries(store, cache).List(context.Background())

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("キャッシュ障害はDBへフォールバック", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		cache := queriesmock.NewMockClassCatalogCache(ctrl)
		cache.EXPECT().Version(gomock.Any()).Return(int64(1), nil)
		cache.EXPECT().GetAll(gomock.Any(), int64(1)).Return(nil, false, errors.New("redis: connection refused"))
		store.EXPECT().List(gomock.Any()).Return(catalog, nil)
		cache.EXPECT().SetAll(gomock.Any(), int64(1), gomock.Any()).Return(errors.New("redis: connection refused"))

		got, err := queries.NewClassQueries(store, cache).List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, catalog, got)
	})

	t.Run("バージョン取得失敗はキャッシュを使わない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		cache := queriesmock.NewMockClassCatalogCache(ctrl)
		cache.EXPECT().Version(gomock.Any()).Return(int64(0), errors.New("redis: connection refused"))
		store.EXPECT().List(gomock.Any()).Return(catalog, nil)

		got, err := queries.NewClassQueries(store, cache).List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, catalog, got)
	})

	t.Run("DB失敗はそのまま返しキャッシュへ書かない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		cache := queriesmock.NewMockClassCatalogCache(ctrl)
		dbErr := errors.New("db down")
		cache.EXPECT().Version(gomock.Any()).Return(int64(0), nil)
		cache.EXPECT().GetAll(gomock.Any(), int64(0)).Return(nil, false, nil)
		store.EXPECT().List(gomock.Any()).Return(nil, dbErr)

		_, err := queries.NewClassQueries(store, cache).List(context.Background())

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("DB読み込み中の無効化後に古い空き枠を返さない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		cache := newVersionedCache()

		stale := builder.NewClassBuilder().WithID(1).WithCapacity(10).WithBookedCount(3).BuildReadModel()
		fresh := builder.NewClassBuilder().WithID(1).WithCapacity(10).WithBookedCount(4).BuildReadModel()

		gomock.InOrder(
			// a reserve commits and invalidates while the first read is in flight
			store.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]queries.ClassView, error) {
				require.NoError(t, cache.Invalidate(ctx))
				return []queries.ClassView{stale}, nil
			}),
			store.EXPECT().List(gomock.Any()).Return([]queries.ClassView{fresh}, nil),
		)

		q := queries.NewClassQueries(store, cache)
		first, err := q.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(3), first[0].BookedCount)

		second, err := q.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(4), second[0].BookedCount)

		third, err := q.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(4), third[0].BookedCount)
	})
}

// versionedCache mirrors the redis catalog cache in memory.
type versionedCache struct {
	mu      sync.Mutex
	version int64
	entries map[int64][]queries.ClassView
}

func newVersionedCache() *versionedCache {
	return &versionedCache{entries: map[int64][]queries.ClassView{}}
}

func (c *versionedCache) Version(context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version, nil
}

func (c *versionedCache) GetAll(_ context.Context, version int64) ([]queries.ClassView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	classes, ok := c.entries[version]
	return classes, ok, nil
}

func (c *versionedCache) SetAll(_ context.Context, version int64, classes []queries.ClassView) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[version] = classes
	return nil
}

func (c *versionedCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	return nil
}

func TestClassQueries_GetByID(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		view := builder.NewClassBuilder().WithID(5).BuildReadModel()
		store.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&view, nil)

		got, err := queries.NewClassQueries(store, queriesmock.NewMockClassCatalogCache(ctrl)).GetByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
	})

	t.Run("NotFoundはErrClassNotFoundへ変換", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClassReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(9)).
			Return(nil, infra.WrapRepoErr("class not found", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewClassQueries(store, queriesmock.NewMockClassCatalogCache(ctrl)).GetByID(context.Background(), 9)

		assert.ErrorIs(t, err, queries.ErrClassNotFound)
	})
}

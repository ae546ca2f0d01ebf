//go:build unit

package commands_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"fitstudio/internal/domain/booking"
	"fitstudio/internal/pkg/clock"
	"fitstudio/internal/pkg/errs"
	"fitstudio/internal/usecase/commands"
	"fitstudio/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2024-06-10"

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type fakeCatalog struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeCatalog) Invalidate(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeCatalog) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newBookingCommands(t *testing.T) (commands.BookingCommands, *uowtest.Store, *fakeCatalog) {
	t.Helper()
	store := uowtest.NewStore()
	catalog := &fakeCatalog{}
	return commands.NewBookingCommands(store, clock.NewMockClock(fixedNow), catalog), store, catalog
}

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("基本成功ケース", func(t *testing.T) {
		cmds, store, catalog := newBookingCommands(t)
		classID := store.AddClass(10, 9)
		userID := uuid.New()

		res, err := cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.BookingID)
		assert.Equal(t, classID, res.ClassID)
		assert.Equal(t, testDate, res.BookingDate)
		assert.Equal(t, "active", res.Status)
		assert.Equal(t, fixedNow, res.CreatedAt)
		assert.Equal(t, 10, store.BookedCount(classID))
		assert.Equal(t, 1, catalog.Calls())

		// last seat taken; the next member is turned away
		_, err = cmds.Reserve(ctx, uuid.New(), commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.True(t, errs.Is(err, commands.ErrCapacityExceeded), "got %v", err)
		assert.Equal(t, 10, store.BookedCount(classID))
	})

	t.Run("満席は拒否され状態は変わらない", func(t *testing.T) {
		cmds, store, catalog := newBookingCommands(t)
		classID := store.AddClass(10, 10)

		_, err := cmds.Reserve(ctx, uuid.New(), commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.True(t, errs.Is(err, commands.ErrCapacityExceeded))
		assert.Equal(t, 10, store.BookedCount(classID))
		assert.Equal(t, 0, store.ActiveCount(classID))
		assert.Equal(t, 0, catalog.Calls())
	})

	t.Run("存在しないクラスはNotFound", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		userID := uuid.New()

		_, err := cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: 42, BookingDate: testDate})
		require.True(t, errs.Is(err, commands.ErrClassNotFound))
		assert.Empty(t, store.ActiveBookingsOf(userID))
	})

	t.Run("不正な日付", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(10, 0)

		for _, date := range []string{"", "10/06/2024", "2024-13-01", "2024-06-10T10:00:00Z"} {
			_, err := cmds.Reserve(ctx, uuid.New(), commands.ReserveRequest{ClassID: classID, BookingDate: date})
			require.True(t, errs.Is(err, commands.ErrInvalidBookingDate), "date %q: %v", date, err)
		}
		assert.Equal(t, 0, store.BookedCount(classID))
		assert.Equal(t, 0, store.Commits())
	})

	t.Run("重複予約は拒否され取消後は再予約できる", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(10, 0)
		userID := uuid.New()
		req := commands.ReserveRequest{ClassID: classID, BookingDate: testDate}

		first, err := cmds.Reserve(ctx, userID, req)
		require.NoError(t, err)

		_, err = cmds.Reserve(ctx, userID, req)
		require.True(t, errs.Is(err, commands.ErrDuplicateBooking))
		assert.Equal(t, 1, store.BookedCount(classID))

		require.NoError(t, cmds.Cancel(ctx, first.BookingID, userID))

		_, err = cmds.Reserve(ctx, userID, req)
		require.NoError(t, err)
		assert.Equal(t, 1, store.BookedCount(classID))
		assert.Equal(t, 1, store.ActiveCount(classID))
	})

	t.Run("別日付の予約は同じカウンタを消費する", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(2, 0)
		userID := uuid.New()

		_, err := cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: classID, BookingDate: "2024-06-10"})
		require.NoError(t, err)
		_, err = cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: classID, BookingDate: "2024-06-17"})
		require.NoError(t, err)
		_, err = cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: classID, BookingDate: "2024-06-24"})
		require.True(t, errs.Is(err, commands.ErrCapacityExceeded))
		assert.Equal(t, 2, store.BookedCount(classID))
	})

	t.Run("満席判定は重複判定より先", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(1, 0)
		userID := uuid.New()
		req := commands.ReserveRequest{ClassID: classID, BookingDate: testDate}

		_, err := cmds.Reserve(ctx, userID, req)
		require.NoError(t, err)

		_, err = cmds.Reserve(ctx, userID, req)
		require.True(t, errs.Is(err, commands.ErrCapacityExceeded))
	})

	t.Run("カウンタ保存失敗でロールバック", func(t *testing.T) {
		cmds, store, catalog := newBookingCommands(t)
		classID := store.AddClass(10, 3)
		store.Fail("classes.SaveBookedCount", nil)
		userID := uuid.New()

		_, err := cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
		assert.Equal(t, 3, store.BookedCount(classID))
		assert.Empty(t, store.ActiveBookingsOf(userID), "ledger row must be rolled back")
		assert.Equal(t, 0, catalog.Calls())
	})

	t.Run("一意制約違反は重複予約として返す", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(10, 0)
		userID := uuid.New()
		store.AddActiveBooking(userID, classID, testDate)
		store.StaleExistsCheck()

		_, err := cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.True(t, errs.Is(err, commands.ErrDuplicateBooking), "got %v", err)
		assert.Equal(t, 0, store.BookedCount(classID))
		assert.Equal(t, 1, store.ActiveCount(classID))
	})

	t.Run("キャッシュ無効化失敗は予約を失敗させない", func(t *testing.T) {
		cmds, store, catalog := newBookingCommands(t)
		catalog.err = errs.New("redis down")
		classID := store.AddClass(10, 0)

		_, err := cmds.Reserve(ctx, uuid.New(), commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.NoError(t, err)
		assert.Equal(t, 1, store.BookedCount(classID))
	})
}

// uowtest.Store serialises every transaction on one mutex, so this covers the
// check-then-increment logic only. The per-class FOR UPDATE lock is exercised
// against postgres in tests/e2e/booking TestConcurrentReserve.
func TestReserveConcurrentLastSeat(t *testing.T) {
	const n = 20
	cmds, store, _ := newBookingCommands(t)
	classID := store.AddClass(10, 9)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		full      int
	)
	start := make(chan struct{})
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := cmds.Reserve(context.Background(), uuid.New(), commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errs.Is(err, commands.ErrCapacityExceeded):
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, full)
	assert.Equal(t, 10, store.BookedCount(classID))
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("基本成功ケース", func(t *testing.T) {
		cmds, store, catalog := newBookingCommands(t)
		classID := store.AddClass(10, 0)
		userID := uuid.New()

		res, err := cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.NoError(t, err)

		require.NoError(t, cmds.Cancel(ctx, res.BookingID, userID))

		status, ok := store.BookingStatus(res.BookingID)
		require.True(t, ok)
		assert.Equal(t, booking.StatusCancelled, status)
		assert.Equal(t, 0, store.BookedCount(classID))
		assert.Equal(t, 2, catalog.Calls())
	})

	t.Run("二重取消はNotFoundでカウンタは一度だけ減る", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(10, 4)
		userID := uuid.New()

		res, err := cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.NoError(t, err)
		require.Equal(t, 5, store.BookedCount(classID))

		require.NoError(t, cmds.Cancel(ctx, res.BookingID, userID))
		assert.Equal(t, 4, store.BookedCount(classID))

		err = cmds.Cancel(ctx, res.BookingID, userID)
		require.True(t, errs.Is(err, commands.ErrBookingNotFound))
		assert.Equal(t, 4, store.BookedCount(classID))
	})

	t.Run("他人の予約はNotFound", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(10, 0)
		owner := uuid.New()

		res, err := cmds.Reserve(ctx, owner, commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.NoError(t, err)

		err = cmds.Cancel(ctx, res.BookingID, uuid.New())
		require.True(t, errs.Is(err, commands.ErrBookingNotFound))

		status, _ := store.BookingStatus(res.BookingID)
		assert.Equal(t, booking.StatusActive, status)
		assert.Equal(t, 1, store.BookedCount(classID))
	})

	t.Run("存在しない予約はNotFound", func(t *testing.T) {
		cmds, _, _ := newBookingCommands(t)

		err := cmds.Cancel(ctx, uuid.New(), uuid.New())
		require.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})

	t.Run("カウンタが既に0でも取消は成功する", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(10, 0)
		userID := uuid.New()
		bookingID := store.AddActiveBooking(userID, classID, testDate)

		require.NoError(t, cmds.Cancel(ctx, bookingID, userID))
		assert.Equal(t, 0, store.BookedCount(classID))
		assert.Equal(t, 0, store.ActiveCount(classID))
	})

	t.Run("取消の保存失敗でロールバック", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(10, 0)
		userID := uuid.New()
		res, err := cmds.Reserve(ctx, userID, commands.ReserveRequest{ClassID: classID, BookingDate: testDate})
		require.NoError(t, err)

		store.Fail("classes.SaveBookedCount", nil)
		err = cmds.Cancel(ctx, res.BookingID, userID)
		require.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))

		status, _ := store.BookingStatus(res.BookingID)
		assert.Equal(t, booking.StatusActive, status)
		assert.Equal(t, 1, store.BookedCount(classID))
	})
}

// Random reserve/cancel sequences keep booked_count equal to the active ledger rows.
func TestCounterMatchesLedger(t *testing.T) {
	ctx := context.Background()
	cmds, store, _ := newBookingCommands(t)
	classes := []int64{store.AddClass(3, 0), store.AddClass(5, 0)}
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	dates := []string{"2024-06-10", "2024-06-17"}

	rng := rand.New(rand.NewPCG(1, 2))
	for range 300 {
		userID := users[rng.IntN(len(users))]
		classID := classes[rng.IntN(len(classes))]

		if rng.IntN(3) == 0 {
			active := store.ActiveBookingsOf(userID)
			if len(active) > 0 {
				_ = cmds.Cancel(ctx, active[rng.IntN(len(active))], userID)
			} else {
				_ = cmds.Cancel(ctx, uuid.New(), userID)
			}
		} else {
			_, _ = cmds.Reserve(ctx, userID, commands.ReserveRequest{
				ClassID:     classID,
				BookingDate: dates[rng.IntN(len(dates))],
			})
		}

		for _, id := range classes {
			require.Equal(t, store.ActiveCount(id), store.BookedCount(id), "class %d drifted", id)
		}
	}
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("ずれたカウンタを台帳から修復する", func(t *testing.T) {
		cmds, store, catalog := newBookingCommands(t)
		classID := store.AddClass(10, 7)
		store.AddActiveBooking(uuid.New(), classID, testDate)
		store.AddActiveBooking(uuid.New(), classID, testDate)

		res, err := cmds.Reconcile(ctx, classID)
		require.NoError(t, err)
		assert.Equal(t, classID, res.ClassID)
		assert.Equal(t, 7, res.PreviousCount)
		assert.Equal(t, 2, res.BookedCount)
		assert.Equal(t, 2, store.BookedCount(classID))
		assert.Equal(t, 1, catalog.Calls())
	})

	t.Run("一致していれば何も書かない", func(t *testing.T) {
		cmds, store, catalog := newBookingCommands(t)
		classID := store.AddClass(10, 1)
		store.AddActiveBooking(uuid.New(), classID, testDate)
		store.Fail("classes.SaveBookedCount", nil)

		res, err := cmds.Reconcile(ctx, classID)
		require.NoError(t, err)
		assert.Equal(t, 1, res.BookedCount)
		assert.Equal(t, 0, catalog.Calls())
	})

	t.Run("存在しないクラス", func(t *testing.T) {
		cmds, _, _ := newBookingCommands(t)

		_, err := cmds.Reconcile(ctx, 99)
		require.True(t, errs.Is(err, commands.ErrClassNotFound))
	})

	t.Run("有効予約が定員を超えている", func(t *testing.T) {
		cmds, store, _ := newBookingCommands(t)
		classID := store.AddClass(1, 1)
		store.AddActiveBooking(uuid.New(), classID, testDate)
		store.AddActiveBooking(uuid.New(), classID, testDate)

		_, err := cmds.Reconcile(ctx, classID)
		require.True(t, errs.Is(err, commands.ErrActiveOverCapacity))
		assert.Equal(t, 1, store.BookedCount(classID))
	})
}

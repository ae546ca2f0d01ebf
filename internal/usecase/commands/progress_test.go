//go:build unit

package commands_test

import (
	"context"
	"testing"

	"fitstudio/internal/domain/progress"
	"fitstudio/internal/pkg/clock"
	"fitstudio/internal/pkg/errs"
	"fitstudio/internal/usecase/commands"
	"fitstudio/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordProgress(t *testing.T) {
	ctx := context.Background()
	weight := 68.2

	t.Run("基本成功ケース", func(t *testing.T) {
		store := uowtest.NewStore()
		cmds := commands.NewProgressCommands(store, clock.NewMockClock(fixedNow))
		userID := uuid.New()

		id, err := cmds.Record(ctx, userID, commands.RecordProgressRequest{WeightKg: &weight, Notes: "week 3"})

		require.NoError(t, err)
		entries := store.ProgressEntries()
		require.Len(t, entries, 1)
		assert.Equal(t, id, entries[0].ID())
		assert.Equal(t, userID, entries[0].UserID())
		assert.Equal(t, fixedNow, entries[0].RecordedAt())
	})

	t.Run("検証エラーは保存しない", func(t *testing.T) {
		store := uowtest.NewStore()
		cmds := commands.NewProgressCommands(store, clock.NewMockClock(fixedNow))

		_, err := cmds.Record(ctx, uuid.New(), commands.RecordProgressRequest{})

		assert.ErrorIs(t, err, progress.ErrEmptyEntry)
		assert.Empty(t, store.ProgressEntries())
		assert.Zero(t, store.Commits())
	})

	t.Run("DB障害", func(t *testing.T) {
		store := uowtest.NewStore()
		store.Fail("progress.Create", nil)
		cmds := commands.NewProgressCommands(store, clock.NewMockClock(fixedNow))

		id, err := cmds.Record(ctx, uuid.New(), commands.RecordProgressRequest{WeightKg: &weight})

		require.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), "got %v", err)
		assert.Equal(t, uuid.Nil, id)
	})
}

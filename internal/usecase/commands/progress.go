package commands

import (
	"context"

	"fitstudio/internal/domain/progress"
	"fitstudio/internal/pkg/clock"
	"fitstudio/internal/pkg/errs"
	"fitstudio/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordProgressRequest struct {
	WeightKg     *float64
	HeightCm     *float64
	Measurements string
	Notes        string
}

type ProgressCommands interface {
	Record(ctx context.Context, userID uuid.UUID, req RecordProgressRequest) (uuid.UUID, error)
}

type progressCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProgressCommands(uow shared.UnitOfWork, clk clock.Clock) ProgressCommands {
	return &progressCommandsImpl{uow: uow, clock: clk}
}

func (uc *progressCommandsImpl) Record(ctx context.Context, userID uuid.UUID, req RecordProgressRequest) (uuid.UUID, error) {
	entry, err := progress.NewEntry(userID, req.WeightKg, req.HeightCm, req.Measurements, req.Notes, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if createErr := tx.Progress().Create(ctx, entry); createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entry.ID(), nil
}

package readstore

import (
	"context"

	"fitstudio/internal/domain/booking"
	"fitstudio/internal/infra"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/pkg/pgconv"
	"fitstudio/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListActiveBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListActiveBookingsByUserRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]queries.BookingView, error) {
	rows, err := r.queries.ListActiveBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}

	views := make([]queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.BookingView{
			ID:          row.ID,
			ClassID:     row.ClassID,
			BookingDate: booking.NewDate(pgconv.DateFromPgtype(row.BookingDate)).String(),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			ClassName:   row.ClassName,
			ClassType:   row.ClassType,
			DayOfWeek:   row.DayOfWeek,
			StartTime:   row.StartTime,
			DurationMin: row.DurationMin,
			TrainerName: pgconv.TextOrEmpty(row.TrainerName),
		})
	}
	return views, nil
}

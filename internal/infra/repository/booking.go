package repository

import (
	"context"

	"fitstudio/internal/domain/booking"
	"fitstudio/internal/infra"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	ExistsActiveBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsActiveBookingParams) (bool, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	CancelBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error)
	CountActiveBookingsByClass(ctx context.Context, db sqlc.DBTX, classID int64) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.queries.CreateBooking(ctx, r.db, sqlc.CreateBookingParams{
		ID:          b.ID(),
		UserID:      b.UserID(),
		ClassID:     b.ClassID(),
		BookingDate: pgconv.DateToPgtype(b.Date().Time()),
		Status:      b.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) ExistsActive(ctx context.Context, userID uuid.UUID, classID int64, date booking.Date) (bool, error) {
	exists, err := r.queries.ExistsActiveBooking(ctx, r.db, sqlc.ExistsActiveBookingParams{
		UserID:      userID,
		ClassID:     classID,
		BookingDate: pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active booking", err)
	}
	return exists, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is invalid", err, infra.KindDBFailure)
	}

	b, err := booking.Reconstruct(
		row.ID,
		row.UserID,
		row.ClassID,
		booking.NewDate(pgconv.DateFromPgtype(row.BookingDate)),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is invalid", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) MarkCancelled(ctx context.Context, b *booking.Booking) (bool, error) {
	affected, err := r.queries.CancelBooking(ctx, r.db, sqlc.CancelBookingParams{
		ID:          b.ID(),
		UserID:      b.UserID(),
		CancelledAt: pgconv.TimePtrToPgtype(b.CancelledAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return affected == 1, nil
}

func (r *BookingRepository) CountActiveByClass(ctx context.Context, classID int64) (int, error) {
	n, err := r.queries.CountActiveBookingsByClass(ctx, r.db, classID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return int(n), nil
}

package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]BookingView, error)
}

type BookingQueries interface {
	// ListActive returns the caller's active bookings ordered by date, then class start time.
	ListActive(ctx context.Context, userID uuid.UUID) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) ListActive(ctx context.Context, userID uuid.UUID) ([]BookingView, error) {
	return q.readStore.ListActiveByUser(ctx, userID)
}

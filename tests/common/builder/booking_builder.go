//go:build unit || e2e

package builder

import (
	"time"

	"fitstudio/internal/domain/booking"
	reqdto "fitstudio/internal/handler/dto/request"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ClassID     int64
	BookingDate string
	Status      string
	CreatedAt   time.Time
	CancelledAt *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ClassID:     1,
		BookingDate: "2025-06-02",
		Status:      "active",
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain creates a fresh active booking the way Reserve does.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := booking.ParseDate(b.BookingDate)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.UserID, b.ClassID, date, b.CreatedAt)
}

// BuildStored rebuilds a booking with the builder's id and status.
func (b *BookingBuilder) BuildStored() (*booking.Booking, error) {
	date, err := booking.ParseDate(b.BookingDate)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(b.ID, b.UserID, b.ClassID, date, status, b.CreatedAt, b.CancelledAt)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	date, _ := time.Parse(booking.DateLayout, b.BookingDate)
	row := sqlc.Bookings{
		ID:          b.ID,
		UserID:      b.UserID,
		ClassID:     b.ClassID,
		BookingDate: pgtype.Date{Time: date, Valid: true},
		Status:      b.Status,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.CancelledAt != nil {
		row.CancelledAt = pgtype.Timestamptz{Time: *b.CancelledAt, Valid: true}
	}
	return row
}

func (b *BookingBuilder) BuildReadModel() queries.BookingView {
	return queries.BookingView{
		ID:          b.ID,
		ClassID:     b.ClassID,
		BookingDate: b.BookingDate,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		ClassName:   "Morning Hatha Yoga",
		ClassType:   "yoga",
		DayOfWeek:   1,
		StartTime:   "08:00",
		DurationMin: 60,
		TrainerName: "Anna Petrova",
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ClassID:     b.ClassID,
		BookingDate: b.BookingDate,
	}
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithClassID(id int64) *BookingBuilder {
	b.ClassID = id
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.BookingDate = date
	return b
}

func (b *BookingBuilder) AsCancelled(at time.Time) *BookingBuilder {
	b.Status = "cancelled"
	b.CancelledAt = &at
	return b
}

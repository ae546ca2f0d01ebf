package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingUser   = errors.New("booking requires a user")
	ErrInvalidClass  = errors.New("booking requires a class")
	ErrMissingDate   = errors.New("booking requires a date")
	ErrNotActive     = errors.New("booking is not active")
	ErrInconsistency = errors.New("cancelled booking without cancellation time")
)

// Booking is a ledger row: one user holding a seat in a class on a given date.
// The only transition is active -> cancelled.
type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	classID     int64
	date        Date
	status      Status
	createdAt   time.Time
	cancelledAt *time.Time
}

func NewBooking(userID uuid.UUID, classID int64, date Date, now time.Time) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if classID <= 0 {
		return nil, ErrInvalidClass
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}

	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		classID:   classID,
		date:      date,
		status:    StatusActive,
		createdAt: now,
	}, nil
}

// Reconstruct rebuilds a booking loaded from storage.
func Reconstruct(
	id, userID uuid.UUID,
	classID int64,
	date Date,
	status Status,
	createdAt time.Time,
	cancelledAt *time.Time,
) (*Booking, error) {
	if status == StatusCancelled && cancelledAt == nil {
		return nil, ErrInconsistency
	}
	return &Booking{
		id:          id,
		userID:      userID,
		classID:     classID,
		date:        date,
		status:      status,
		createdAt:   createdAt,
		cancelledAt: cancelledAt,
	}, nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) ClassID() int64          { return b.classID }
func (b *Booking) Date() Date              { return b.date }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) Cancel(now time.Time) error {
	if !b.IsActive() {
		return ErrNotActive
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

package shared

import (
	"context"

	"fitstudio/internal/domain/booking"
	"fitstudio/internal/domain/class"
	"fitstudio/internal/domain/progress"
	"fitstudio/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction. Any error from fn rolls everything back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Classes() ClassRepository
	Bookings() BookingRepository
	Users() UserRepository
	Progress() ProgressRepository
}

type ClassRepository interface {
	// LockByID loads the class and holds its row lock until the transaction ends.
	LockByID(ctx context.Context, id int64) (*class.ClassSession, error)
	SaveBookedCount(ctx context.Context, c *class.ClassSession) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	ExistsActive(ctx context.Context, userID uuid.UUID, classID int64, date booking.Date) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// MarkCancelled persists a cancelled booking and reports whether an active row was flipped.
	MarkCancelled(ctx context.Context, b *booking.Booking) (bool, error)
	CountActiveByClass(ctx context.Context, classID int64) (int, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type ProgressRepository interface {
	Create(ctx context.Context, e *progress.Entry) error
}

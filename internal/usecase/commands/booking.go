package commands

import (
	"context"
	"log/slog"
	"time"

	"fitstudio/internal/domain/booking"
	"fitstudio/internal/domain/class"
	"fitstudio/internal/infra"
	"fitstudio/internal/pkg/clock"
	"fitstudio/internal/pkg/errs"
	"fitstudio/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrClassNotFound           = errs.New("class not found")
	ErrCapacityExceeded        = errs.New("class capacity exceeded")
	ErrDuplicateBooking        = errs.New("duplicate active booking")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidBookingDate      = errs.New("invalid booking date")
	ErrActiveOverCapacity      = errs.New("active bookings exceed class capacity")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

var tracer = otel.Tracer("fitstudio/usecase/commands")

// CatalogInvalidator is told after a committed seat change so cached seat counts are dropped.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

type ReserveRequest struct {
	ClassID     int64
	BookingDate string
}

type ReserveResult struct {
	BookingID   uuid.UUID
	ClassID     int64
	BookingDate string
	Status      string
	CreatedAt   time.Time
}

type ReconcileResult struct {
	ClassID       int64
	PreviousCount int
	BookedCount   int
}

type BookingCommands interface {
	Reserve(ctx context.Context, userID uuid.UUID, req ReserveRequest) (*ReserveResult, error)
	Cancel(ctx context.Context, bookingID, userID uuid.UUID) error
	Reconcile(ctx context.Context, classID int64) (*ReconcileResult, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	catalog CatalogInvalidator
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, catalog CatalogInvalidator) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		clock:   clk,
		catalog: catalog,
	}
}

// Reserve checks class existence, free seats and duplicates in that order,
// all under the class row lock, then writes the booking and the new count together.
func (uc *bookingCommandsImpl) Reserve(ctx context.Context, userID uuid.UUID, req ReserveRequest) (*ReserveResult, error) {
	ctx, span := tracer.Start(ctx, "booking.reserve", trace.WithAttributes(
		attribute.Int64("class.id", req.ClassID),
		attribute.String("booking.date", req.BookingDate),
	))
	defer span.End()

	date, err := booking.ParseDate(req.BookingDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingDate)
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, err := tx.Classes().LockByID(ctx, req.ClassID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrClassNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !session.HasFreeSeat() {
			return ErrCapacityExceeded
		}

		exists, err := tx.Bookings().ExistsActive(ctx, userID, session.ID(), date)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrDuplicateBooking
		}

		b, err := booking.NewBooking(userID, session.ID(), date, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			// partial unique index on active (user, class, date)
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateBooking
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := session.ReserveSeat(); err != nil {
			return ErrCapacityExceeded
		}
		if err := tx.Classes().SaveBookedCount(ctx, session); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created = b
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("booking.id", created.ID().String()))
	uc.invalidateCatalog(ctx)

	return &ReserveResult{
		BookingID:   created.ID(),
		ClassID:     created.ClassID(),
		BookingDate: created.Date().String(),
		Status:      created.Status().String(),
		CreatedAt:   created.CreatedAt(),
	}, nil
}

// Cancel flips an active booking owned by userID. Missing, foreign and
// already-cancelled bookings all report ErrBookingNotFound.
func (uc *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, userID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "booking.cancel", trace.WithAttributes(
		attribute.String("booking.id", bookingID.String()),
	))
	defer span.End()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !b.IsOwnedBy(userID) || !b.IsActive() {
			return ErrBookingNotFound
		}

		// lock order: class row first, then the booking row via the update
		session, err := tx.Classes().LockByID(ctx, b.ClassID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := b.Cancel(uc.clock.Now()); err != nil {
			return ErrBookingNotFound
		}
		flipped, err := tx.Bookings().MarkCancelled(ctx, b)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !flipped {
			return ErrBookingNotFound
		}

		return uc.releaseSeat(ctx, tx, session)
	})
	if err != nil {
		recordSpanError(span, err)
		return err
	}

	uc.invalidateCatalog(ctx)
	return nil
}

func (uc *bookingCommandsImpl) releaseSeat(ctx context.Context, tx shared.Tx, session *class.ClassSession) error {
	if err := session.ReleaseSeat(); err != nil {
		// counter already drifted below the ledger; Reconcile repairs it
		slog.Warn("booked count already zero on cancel", "class_id", session.ID())
		return nil
	}
	if err := tx.Classes().SaveBookedCount(ctx, session); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// Reconcile rewrites booked_count from the ledger under the class lock.
func (uc *bookingCommandsImpl) Reconcile(ctx context.Context, classID int64) (*ReconcileResult, error) {
	ctx, span := tracer.Start(ctx, "booking.reconcile", trace.WithAttributes(
		attribute.Int64("class.id", classID),
	))
	defer span.End()

	var result *ReconcileResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, err := tx.Classes().LockByID(ctx, classID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrClassNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		active, err := tx.Bookings().CountActiveByClass(ctx, classID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		previous := session.BookedCount()
		if err := session.Recount(active); err != nil {
			return errs.Mark(err, ErrActiveOverCapacity)
		}
		if previous != active {
			if err := tx.Classes().SaveBookedCount(ctx, session); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			slog.Info("booked count reconciled", "class_id", classID, "previous", previous, "current", active)
		}

		result = &ReconcileResult{
			ClassID:       classID,
			PreviousCount: previous,
			BookedCount:   active,
		}
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	if result.PreviousCount != result.BookedCount {
		uc.invalidateCatalog(ctx)
	}
	return result, nil
}

func (uc *bookingCommandsImpl) invalidateCatalog(ctx context.Context) {
	if uc.catalog == nil {
		return
	}
	if err := uc.catalog.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate class catalog cache", "error", err.Error())
	}
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

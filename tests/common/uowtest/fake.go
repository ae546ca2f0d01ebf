//go:build unit || e2e

// Package uowtest provides an in-memory shared.UnitOfWork for command tests.
// Transactions are fully serialized, which stands in for the class row lock.
package uowtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitstudio/internal/domain/booking"
	"fitstudio/internal/domain/class"
	"fitstudio/internal/domain/progress"
	"fitstudio/internal/domain/user"
	"fitstudio/internal/infra"
	"fitstudio/internal/pkg/errs"
	"fitstudio/internal/usecase/shared"

	"github.com/google/uuid"
)

var errInjected = errs.New("injected failure")

type classRow struct {
	name      string
	classType class.Type
	day       class.Weekday
	start     class.StartTime
	duration  int
	capacity  int
	booked    int
}

type bookingRow struct {
	id          uuid.UUID
	userID      uuid.UUID
	classID     int64
	date        booking.Date
	status      booking.Status
	createdAt   time.Time
	cancelledAt *time.Time
}

type state struct {
	classes  map[int64]classRow
	bookings map[uuid.UUID]bookingRow
	users    map[uuid.UUID]*user.User
	emails   map[string]uuid.UUID
	progress []*progress.Entry
	logins   map[uuid.UUID]int
}

func (s state) clone() state {
	c := state{
		classes:  make(map[int64]classRow, len(s.classes)),
		bookings: make(map[uuid.UUID]bookingRow, len(s.bookings)),
		users:    make(map[uuid.UUID]*user.User, len(s.users)),
		emails:   make(map[string]uuid.UUID, len(s.emails)),
		progress: append([]*progress.Entry(nil), s.progress...),
		logins:   make(map[uuid.UUID]int, len(s.logins)),
	}
	for k, v := range s.classes {
		c.classes[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.emails {
		c.emails[k] = v
	}
	for k, v := range s.logins {
		c.logins[k] = v
	}
	return c
}

// Store is the fake database behind UnitOfWork.
type Store struct {
	mu      sync.Mutex
	st      state
	nextID  int64
	failOn  map[string]error
	commits int
	// staleExists makes ExistsActive miss rows, as a read racing another commit would
	staleExists bool
}

func NewStore() *Store {
	return &Store{
		st: state{
			classes:  map[int64]classRow{},
			bookings: map[uuid.UUID]bookingRow{},
			users:    map[uuid.UUID]*user.User{},
			emails:   map[string]uuid.UUID{},
			logins:   map[uuid.UUID]int{},
		},
		failOn: map[string]error{},
	}
}

// Within runs fn while holding the store lock and rolls back on error.
// All transactions are serialised, not only those touching the same class.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &fakeTx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	s.commits++
	return nil
}

// Fail makes the named repository operation return err (a generic failure when nil).
// Names are "<repo>.<Method>", e.g. "classes.SaveBookedCount".
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		err = infra.WrapRepoErr("injected", errInjected, infra.KindDBFailure)
	}
	s.failOn[op] = err
}

// StaleExistsCheck makes ExistsActive always report false so that only the
// unique index guards duplicates.
func (s *Store) StaleExistsCheck() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staleExists = true
}

func (s *Store) injected(op string) error {
	return s.failOn[op]
}

// AddClass inserts a Monday 08:00 yoga class and returns its id.
func (s *Store) AddClass(capacity, booked int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	start, _ := class.NewStartTime("08:00")
	s.st.classes[s.nextID] = classRow{
		name:      "Morning Hatha Yoga",
		classType: class.TypeYoga,
		day:       class.Monday,
		start:     start,
		duration:  60,
		capacity:  capacity,
		booked:    booked,
	}
	return s.nextID
}

// SetBookedCount writes the counter directly, bypassing the ledger.
func (s *Store) SetBookedCount(classID int64, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.st.classes[classID]
	row.booked = n
	s.st.classes[classID] = row
}

// AddActiveBooking inserts a ledger row without touching the counter.
func (s *Store) AddActiveBooking(userID uuid.UUID, classID int64, date string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, _ := booking.ParseDate(date)
	id := uuid.New()
	s.st.bookings[id] = bookingRow{
		id:        id,
		userID:    userID,
		classID:   classID,
		date:      d,
		status:    booking.StatusActive,
		createdAt: time.Now(),
	}
	return id
}

// AddUser stores u so that its email is taken.
func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID()] = u
	s.st.emails[u.Email().Value()] = u.ID()
}

func (s *Store) BookedCount(classID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.classes[classID].booked
}

func (s *Store) ActiveCount(classID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.st.bookings {
		if b.classID == classID && b.status == booking.StatusActive {
			n++
		}
	}
	return n
}

func (s *Store) BookingStatus(id uuid.UUID) (booking.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	return b.status, ok
}

// ActiveBookingsOf lists active booking ids of a user, oldest first.
func (s *Store) ActiveBookingsOf(userID uuid.UUID) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []bookingRow
	for _, b := range s.st.bookings {
		if b.userID == userID && b.status == booking.StatusActive {
			rows = append(rows, b)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].createdAt.Before(rows[j].createdAt) })
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.id
	}
	return ids
}

func (s *Store) User(email string) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.st.emails[email]
	if !ok {
		return nil, false
	}
	return s.st.users[id], true
}

func (s *Store) LastLoginUpdates(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.logins[userID]
}

func (s *Store) ProgressEntries() []*progress.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*progress.Entry(nil), s.st.progress...)
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

type fakeTx struct {
	s *Store
}

func (t *fakeTx) Classes() shared.ClassRepository     { return classRepo{t.s} }
func (t *fakeTx) Bookings() shared.BookingRepository  { return bookingRepo{t.s} }
func (t *fakeTx) Users() shared.UserRepository        { return userRepo{t.s} }
func (t *fakeTx) Progress() shared.ProgressRepository { return progressRepo{t.s} }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type classRepo struct{ s *Store }

func (r classRepo) LockByID(_ context.Context, id int64) (*class.ClassSession, error) {
	if err := r.s.injected("classes.LockByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.st.classes[id]
	if !ok {
		return nil, notFound("class not found")
	}
	return class.NewClassSession(id, row.name, row.classType, row.day, row.start, row.duration, row.capacity, row.booked)
}

func (r classRepo) SaveBookedCount(_ context.Context, c *class.ClassSession) error {
	if err := r.s.injected("classes.SaveBookedCount"); err != nil {
		return err
	}
	row, ok := r.s.st.classes[c.ID()]
	if !ok {
		return notFound("class not found")
	}
	// mirrors the booked_count range CHECK
	if c.BookedCount() < 0 || c.BookedCount() > row.capacity {
		return infra.WrapRepoErr("booked_count out of range", errInjected, infra.KindDBFailure)
	}
	row.booked = c.BookedCount()
	r.s.st.classes[c.ID()] = row
	return nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.s.injected("bookings.Create"); err != nil {
		return err
	}
	// mirrors the partial unique index on active rows
	for _, row := range r.s.st.bookings {
		if row.status == booking.StatusActive && row.userID == b.UserID() &&
			row.classID == b.ClassID() && row.date.Equal(b.Date()) {
			return infra.WrapRepoErr("duplicate active booking", errInjected, infra.KindDuplicateKey)
		}
	}
	r.s.st.bookings[b.ID()] = bookingRow{
		id:        b.ID(),
		userID:    b.UserID(),
		classID:   b.ClassID(),
		date:      b.Date(),
		status:    b.Status(),
		createdAt: b.CreatedAt(),
	}
	return nil
}

func (r bookingRepo) ExistsActive(_ context.Context, userID uuid.UUID, classID int64, date booking.Date) (bool, error) {
	if err := r.s.injected("bookings.ExistsActive"); err != nil {
		return false, err
	}
	if r.s.staleExists {
		return false, nil
	}
	for _, row := range r.s.st.bookings {
		if row.status == booking.StatusActive && row.userID == userID &&
			row.classID == classID && row.date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if err := r.s.injected("bookings.FindByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return booking.Reconstruct(row.id, row.userID, row.classID, row.date, row.status, row.createdAt, row.cancelledAt)
}

func (r bookingRepo) MarkCancelled(_ context.Context, b *booking.Booking) (bool, error) {
	if err := r.s.injected("bookings.MarkCancelled"); err != nil {
		return false, err
	}
	row, ok := r.s.st.bookings[b.ID()]
	if !ok || row.status != booking.StatusActive || row.userID != b.UserID() {
		return false, nil
	}
	row.status = booking.StatusCancelled
	row.cancelledAt = b.CancelledAt()
	r.s.st.bookings[b.ID()] = row
	return true, nil
}

func (r bookingRepo) CountActiveByClass(_ context.Context, classID int64) (int, error) {
	if err := r.s.injected("bookings.CountActiveByClass"); err != nil {
		return 0, err
	}
	n := 0
	for _, row := range r.s.st.bookings {
		if row.classID == classID && row.status == booking.StatusActive {
			n++
		}
	}
	return n, nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	if err := r.s.injected("users.Create"); err != nil {
		return err
	}
	if _, taken := r.s.st.emails[u.Email().Value()]; taken {
		return infra.WrapRepoErr("email taken", errInjected, infra.KindDuplicateKey)
	}
	r.s.st.users[u.ID()] = u
	r.s.st.emails[u.Email().Value()] = u.ID()
	return nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	if err := r.s.injected("users.UpdateLastLogin"); err != nil {
		return err
	}
	if _, ok := r.s.st.users[userID]; !ok {
		return notFound("user not found")
	}
	r.s.st.logins[userID]++
	return nil
}

type progressRepo struct{ s *Store }

func (r progressRepo) Create(_ context.Context, e *progress.Entry) error {
	if err := r.s.injected("progress.Create"); err != nil {
		return err
	}
	r.s.st.progress = append(r.s.st.progress, e)
	return nil
}

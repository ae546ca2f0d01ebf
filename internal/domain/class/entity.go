package class

import (
	"errors"
	"strings"
)

var (
	ErrClassFull          = errors.New("class is full")
	ErrNoSeatsHeld        = errors.New("class has no booked seats to release")
	ErrInvalidCapacity    = errors.New("capacity must be positive")
	ErrInvalidBookedCount = errors.New("booked count must be between 0 and capacity")
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrEmptyName          = errors.New("class name is required")
)

// ClassSession is one weekly schedule slot with a seat limit. bookedCount is
// a cached tally of active bookings and only changes together with the ledger.
type ClassSession struct {
	id          int64
	name        string
	classType   Type
	day         Weekday
	startTime   StartTime
	durationMin int
	capacity    int
	bookedCount int
}

func NewClassSession(
	id int64,
	name string,
	classType Type,
	day Weekday,
	startTime StartTime,
	durationMin int,
	capacity int,
	bookedCount int,
) (*ClassSession, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if bookedCount < 0 || bookedCount > capacity {
		return nil, ErrInvalidBookedCount
	}

	return &ClassSession{
		id:          id,
		name:        name,
		classType:   classType,
		day:         day,
		startTime:   startTime,
		durationMin: durationMin,
		capacity:    capacity,
		bookedCount: bookedCount,
	}, nil
}

func (c *ClassSession) ID() int64            { return c.id }
func (c *ClassSession) Name() string         { return c.name }
func (c *ClassSession) Type() Type           { return c.classType }
func (c *ClassSession) Day() Weekday         { return c.day }
func (c *ClassSession) StartTime() StartTime { return c.startTime }
func (c *ClassSession) DurationMin() int     { return c.durationMin }
func (c *ClassSession) Capacity() int        { return c.capacity }
func (c *ClassSession) BookedCount() int     { return c.bookedCount }

func (c *ClassSession) FreeSeats() int {
	return c.capacity - c.bookedCount
}

func (c *ClassSession) HasFreeSeat() bool {
	return c.bookedCount < c.capacity
}

func (c *ClassSession) ReserveSeat() error {
	if !c.HasFreeSeat() {
		return ErrClassFull
	}
	c.bookedCount++
	return nil
}

func (c *ClassSession) ReleaseSeat() error {
	if c.bookedCount == 0 {
		return ErrNoSeatsHeld
	}
	c.bookedCount--
	return nil
}

// Recount overwrites the cached tally with a value counted from the ledger.
func (c *ClassSession) Recount(activeBookings int) error {
	if activeBookings < 0 || activeBookings > c.capacity {
		return ErrInvalidBookedCount
	}
	c.bookedCount = activeBookings
	return nil
}

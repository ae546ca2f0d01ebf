package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDate   = errors.New("booking date must be YYYY-MM-DD")
	ErrInvalidStatus = errors.New("invalid booking status")
)

const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or zone component.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time       { return d.t }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

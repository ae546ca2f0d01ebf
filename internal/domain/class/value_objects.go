package class

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidWeekday   = errors.New("invalid day of week")
	ErrInvalidStartTime = errors.New("start time must be HH:MM")
	ErrInvalidType      = errors.New("invalid class type")
)

// Weekday follows ISO-8601 numbering: 1 is Monday, 7 is Sunday.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func NewWeekday(n int) (Weekday, error) {
	if n < int(Monday) || n > int(Sunday) {
		return 0, ErrInvalidWeekday
	}
	return Weekday(n), nil
}

func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := int(Monday); i <= int(Sunday); i++ {
		if weekdayNames[i] == s {
			return Weekday(i), nil
		}
	}
	return 0, ErrInvalidWeekday
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

var startTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// StartTime is a wall-clock "HH:MM" value. Zero-padding keeps lexical and
// chronological order identical.
type StartTime struct {
	value string
}

func NewStartTime(s string) (StartTime, error) {
	s = strings.TrimSpace(s)
	if !startTimeRegex.MatchString(s) {
		return StartTime{}, ErrInvalidStartTime
	}
	return StartTime{value: s}, nil
}

func (t StartTime) String() string {
	return t.value
}

type Type string

const (
	TypeYoga       Type = "yoga"
	TypePilates    Type = "pilates"
	TypeFunctional Type = "functional"
	TypeStretching Type = "stretching"
)

func NewType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypeYoga, TypePilates, TypeFunctional, TypeStretching:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

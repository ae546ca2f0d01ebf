//go:build unit || e2e

package builder

import (
	"time"

	"fitstudio/internal/domain/class"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ClassBuilder struct {
	ID          int64
	Name        string
	Type        string
	Day         int
	StartTime   string
	DurationMin int
	Capacity    int
	BookedCount int
	TrainerName string
	PriceCents  int
}

func NewClassBuilder() *ClassBuilder {
	return &ClassBuilder{
		ID:          1,
		Name:        "Morning Hatha Yoga",
		Type:        "yoga",
		Day:         1,
		StartTime:   "08:00",
		DurationMin: 60,
		Capacity:    15,
		BookedCount: 0,
		TrainerName: "Anna Petrova",
		PriceCents:  1500,
	}
}

func (b *ClassBuilder) With(mutate func(*ClassBuilder)) *ClassBuilder {
	mutate(b)
	return b
}

func (b *ClassBuilder) BuildDomain() (*class.ClassSession, error) {
	t, err := class.NewType(b.Type)
	if err != nil {
		return nil, err
	}
	day, err := class.NewWeekday(b.Day)
	if err != nil {
		return nil, err
	}
	start, err := class.NewStartTime(b.StartTime)
	if err != nil {
		return nil, err
	}
	return class.NewClassSession(b.ID, b.Name, t, day, start, b.DurationMin, b.Capacity, b.BookedCount)
}

func (b *ClassBuilder) BuildInfra() sqlc.Classes {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return sqlc.Classes{
		ID:          b.ID,
		Name:        b.Name,
		Description: pgtype.Text{String: "seeded", Valid: true},
		Type:        b.Type,
		TrainerID:   pgtype.Int8{Int64: 1, Valid: true},
		DayOfWeek:   int32(b.Day),
		StartTime:   b.StartTime,
		DurationMin: int32(b.DurationMin),
		Capacity:    int32(b.Capacity),
		BookedCount: int32(b.BookedCount),
		PriceCents:  int32(b.PriceCents),
		CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *ClassBuilder) BuildReadModel() queries.ClassView {
	trainerID := int64(1)
	return queries.ClassView{
		ID:             b.ID,
		Name:           b.Name,
		Description:    "seeded",
		Type:           b.Type,
		TrainerID:      &trainerID,
		TrainerName:    b.TrainerName,
		DayOfWeek:      int32(b.Day),
		DayName:        class.Weekday(b.Day).String(),
		StartTime:      b.StartTime,
		DurationMin:    int32(b.DurationMin),
		Capacity:       int32(b.Capacity),
		BookedCount:    int32(b.BookedCount),
		AvailableSpots: int32(b.Capacity - b.BookedCount),
		PriceCents:     int32(b.PriceCents),
	}
}

func (b *ClassBuilder) WithID(id int64) *ClassBuilder {
	b.ID = id
	return b
}

func (b *ClassBuilder) WithCapacity(capacity int) *ClassBuilder {
	b.Capacity = capacity
	return b
}

func (b *ClassBuilder) WithBookedCount(n int) *ClassBuilder {
	b.BookedCount = n
	return b
}

func (b *ClassBuilder) WithName(name string) *ClassBuilder {
	b.Name = name
	return b
}

func (b *ClassBuilder) WithDay(day int) *ClassBuilder {
	b.Day = day
	return b
}

func (b *ClassBuilder) WithStartTime(s string) *ClassBuilder {
	b.StartTime = s
	return b
}

func (b *ClassBuilder) WithType(t string) *ClassBuilder {
	b.Type = t
	return b
}

func (b *ClassBuilder) WithDuration(min int) *ClassBuilder {
	b.DurationMin = min
	return b
}

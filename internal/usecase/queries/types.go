package queries

import (
	"time"

	"github.com/google/uuid"
)

// ClassView is the public catalog entry for one weekly class slot.
type ClassView struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Type           string `json:"type"`
	TrainerID      *int64 `json:"trainer_id,omitempty"`
	TrainerName    string `json:"trainer_name"`
	DayOfWeek      int32  `json:"day_of_week"`
	DayName        string `json:"day_name"`
	StartTime      string `json:"start_time"`
	DurationMin    int32  `json:"duration_min"`
	Capacity       int32  `json:"capacity"`
	BookedCount    int32  `json:"booked_count"`
	AvailableSpots int32  `json:"available_spots"`
	PriceCents     int32  `json:"price_cents"`
}

type TrainerView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Specialization  string `json:"specialization"`
	ExperienceYears int32  `json:"experience_years"`
	Bio             string `json:"bio"`
	PhotoURL        string `json:"photo_url"`
}

// BookingView joins a ledger row with the display fields of its class.
type BookingView struct {
	ID          uuid.UUID `json:"id"`
	ClassID     int64     `json:"class_id"`
	BookingDate string    `json:"booking_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ClassName   string    `json:"class_name"`
	ClassType   string    `json:"class_type"`
	DayOfWeek   int32     `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	DurationMin int32     `json:"duration_min"`
	TrainerName string    `json:"trainer_name"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	SubscriptionType string     `json:"subscription_type"`
	Role             string     `json:"role"`
	IsActive         bool       `json:"is_active"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type ProgressView struct {
	ID           uuid.UUID `json:"id"`
	WeightKg     *float64  `json:"weight_kg,omitempty"`
	HeightCm     *float64  `json:"height_cm,omitempty"`
	Measurements string    `json:"measurements"`
	Notes        string    `json:"notes"`
	RecordedAt   time.Time `json:"recorded_at"`
}

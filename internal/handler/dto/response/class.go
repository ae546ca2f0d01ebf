package response

import (
	"fitstudio/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ClassResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Type           string `json:"type"`
	TrainerID      *int64 `json:"trainerId,omitempty"`
	TrainerName    string `json:"trainerName"`
	DayOfWeek      int32  `json:"dayOfWeek"`
	DayName        string `json:"dayName"`
	StartTime      string `json:"startTime"`
	DurationMin    int32  `json:"durationMin"`
	Capacity       int32  `json:"capacity"`
	BookedCount    int32  `json:"bookedCount"`
	AvailableSpots int32  `json:"availableSpots"`
	PriceCents     int32  `json:"priceCents"`
}

type TrainerResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Specialization  string `json:"specialization"`
	ExperienceYears int32  `json:"experienceYears"`
	Bio             string `json:"bio"`
	PhotoURL        string `json:"photoUrl"`
}

func FromClassView(v *queries.ClassView) (*ClassResponse, error) {
	var res ClassResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromClassViews(views []queries.ClassView) ([]ClassResponse, error) {
	res := make([]ClassResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromTrainerViews(views []queries.TrainerView) ([]TrainerResponse, error) {
	res := make([]TrainerResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

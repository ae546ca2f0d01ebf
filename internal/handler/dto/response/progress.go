package response

import (
	"time"

	"fitstudio/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProgressResponse struct {
	ID           uuid.UUID `json:"id"`
	WeightKg     *float64  `json:"weightKg,omitempty"`
	HeightCm     *float64  `json:"heightCm,omitempty"`
	Measurements string    `json:"measurements"`
	Notes        string    `json:"notes"`
	RecordedAt   time.Time `json:"recordedAt"`
}

type ProgressCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromProgressViews(views []queries.ProgressView) []ProgressResponse {
	res := make([]ProgressResponse, len(views))
	for i, v := range views {
		res[i] = ProgressResponse(v)
	}
	return res
}

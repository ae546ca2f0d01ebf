package response

import (
	"time"

	"fitstudio/internal/usecase/commands"
	"fitstudio/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	BookingID   uuid.UUID `json:"bookingId"`
	ClassID     int64     `json:"classId"`
	BookingDate string    `json:"bookingDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ClassID     int64     `json:"classId"`
	ClassName   string    `json:"className"`
	ClassType   string    `json:"classType"`
	TrainerName string    `json:"trainerName"`
	BookingDate string    `json:"bookingDate"`
	DayOfWeek   int32     `json:"dayOfWeek"`
	StartTime   string    `json:"startTime"`
	DurationMin int32     `json:"durationMin"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ReconcileResponse struct {
	ClassID       int64 `json:"classId"`
	PreviousCount int   `json:"previousCount"`
	BookedCount   int   `json:"bookedCount"`
}

func FromReserveResult(r *commands.ReserveResult) *BookingResponse {
	return &BookingResponse{
		BookingID:   r.BookingID,
		ClassID:     r.ClassID,
		BookingDate: r.BookingDate,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

func FromBookingViews(views []queries.BookingView) []BookingListItemResponse {
	res := make([]BookingListItemResponse, len(views))
	for i, v := range views {
		res[i] = BookingListItemResponse{
			ID:          v.ID,
			ClassID:     v.ClassID,
			ClassName:   v.ClassName,
			ClassType:   v.ClassType,
			TrainerName: v.TrainerName,
			BookingDate: v.BookingDate,
			DayOfWeek:   v.DayOfWeek,
			StartTime:   v.StartTime,
			DurationMin: v.DurationMin,
			Status:      v.Status,
			CreatedAt:   v.CreatedAt,
		}
	}
	return res
}

func FromReconcileResult(r *commands.ReconcileResult) *ReconcileResponse {
	return &ReconcileResponse{
		ClassID:       r.ClassID,
		PreviousCount: r.PreviousCount,
		BookedCount:   r.BookedCount,
	}
}

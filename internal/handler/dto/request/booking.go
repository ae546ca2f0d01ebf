package request

import "fitstudio/internal/usecase/commands"

type CreateBookingRequest struct {
	ClassID     int64  `json:"class_id" binding:"required,gt=0"`
	BookingDate string `json:"booking_date" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.ReserveRequest {
	return commands.ReserveRequest{
		ClassID:     r.ClassID,
		BookingDate: r.BookingDate,
	}
}

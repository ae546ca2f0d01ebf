package api

import (
	"net/http"

	"fitstudio/internal/domain/progress"
	"fitstudio/internal/handler/httperr"
	"fitstudio/internal/pkg/errs"
	"fitstudio/internal/usecase/commands"
	"fitstudio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "Invalid request"
	msgUnauthorized     = "Access token required"
	msgClassNotFound    = "Class not found"
	msgBookingNotFound  = "Booking not found"
	msgCapacityExceeded = "No seats left for this class"
	msgDuplicateBooking = "You are already booked for this class on that date"
	msgInternalError    = "Internal server error"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

var bookingErrorMappings = []errorMapping{
	{commands.ErrClassNotFound, http.StatusNotFound, msgClassNotFound},
	{queries.ErrClassNotFound, http.StatusNotFound, msgClassNotFound},
	{commands.ErrBookingNotFound, http.StatusNotFound, msgBookingNotFound},
	{commands.ErrCapacityExceeded, http.StatusBadRequest, msgCapacityExceeded},
	{commands.ErrDuplicateBooking, http.StatusBadRequest, msgDuplicateBooking},
	{commands.ErrInvalidBookingDate, http.StatusBadRequest, "Invalid booking date, expected YYYY-MM-DD"},
	{commands.ErrActiveOverCapacity, http.StatusConflict, "Active bookings exceed class capacity"},
}

var progressErrorMappings = []errorMapping{
	{progress.ErrEmptyEntry, http.StatusBadRequest, "At least one value is required"},
	{progress.ErrWeightOutOfRange, http.StatusBadRequest, "Weight must be between 30 and 200 kg"},
	{progress.ErrHeightOutOfRange, http.StatusBadRequest, "Height must be between 100 and 250 cm"},
	{progress.ErrMeasurementsTooLong, http.StatusBadRequest, "Measurements must be at most 500 characters"},
	{progress.ErrNotesTooLong, http.StatusBadRequest, "Notes must be at most 1000 characters"},
}

// abortWithMapped falls back to 500 for anything not in mappings.
func abortWithMapped(c *gin.Context, err error, mappings []errorMapping) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
}

package api

import (
	"log/slog"
	"net/http"

	reqdto "fitstudio/internal/handler/dto/request"
	resdto "fitstudio/internal/handler/dto/response"
	"fitstudio/internal/handler/httperr"
	"fitstudio/internal/handler/middleware"
	"fitstudio/internal/usecase/commands"
	"fitstudio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve a seat in a class on a given date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthenticated, msgUnauthorized, nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	middleware.LogAttr(c, slog.Int64("class_id", req.ClassID))
	middleware.LogAttr(c, slog.String("booking_date", req.BookingDate))

	result, err := h.cmds.Reserve(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		abortWithMapped(c, err, bookingErrorMappings)
		return
	}

	middleware.LogAttr(c, slog.String("booking_id", result.BookingID.String()))
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary List my bookings
// @Description Active bookings of the current user ordered by date and start time
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings/my [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthenticated, msgUnauthorized, nil)
		return
	}

	views, err := h.q.ListActive(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Description Cancel one of the current user's active bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthenticated, msgUnauthorized, nil)
		return
	}

	// a malformed id cannot name an existing booking
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound, nil)
		return
	}

	middleware.LogAttr(c, slog.String("booking_id", bookingID.String()))

	if err := h.cmds.Cancel(c.Request.Context(), bookingID, userID); err != nil {
		abortWithMapped(c, err, bookingErrorMappings)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Booking cancelled"})
}

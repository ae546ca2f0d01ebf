package api

import (
	"log/slog"
	"net/http"
	"strconv"

	resdto "fitstudio/internal/handler/dto/response"
	"fitstudio/internal/handler/httperr"
	"fitstudio/internal/handler/middleware"
	"fitstudio/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookings commands.BookingCommands
}

func NewAdminHandler(bookings commands.BookingCommands) *AdminHandler {
	return &AdminHandler{bookings: bookings}
}

// @Summary Reconcile booked count
// @Description Recount active bookings of a class and rewrite its booked count
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/classes/{id}/reconcile [post]
func (h *AdminHandler) ReconcileClass(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusNotFound, commands.ErrClassNotFound, msgClassNotFound, nil)
		return
	}

	middleware.LogAttr(c, slog.Int64("class_id", id))

	result, err := h.bookings.Reconcile(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, bookingErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileResult(result))
}

package api

import (
	"net/http"
	"strconv"

	resdto "fitstudio/internal/handler/dto/response"
	"fitstudio/internal/handler/httperr"
	"fitstudio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	classes  queries.ClassQueries
	trainers queries.TrainerQueries
}

func NewClassHandler(classes queries.ClassQueries, trainers queries.TrainerQueries) *ClassHandler {
	return &ClassHandler{classes: classes, trainers: trainers}
}

// @Summary List classes
// @Description Weekly class schedule with remaining seats
// @Tags classes
// @Produce json
// @Success 200 {array} resdto.ClassResponse
// @Failure 500 {object} httperr.Response
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	views, err := h.classes.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}

	res, err := resdto.FromClassViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get class
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} resdto.ClassResponse
// @Failure 404 {object} httperr.Response
// @Router /classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusNotFound, queries.ErrClassNotFound, msgClassNotFound, nil)
		return
	}

	view, err := h.classes.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, bookingErrorMappings)
		return
	}

	res, err := resdto.FromClassView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List trainers
// @Tags trainers
// @Produce json
// @Success 200 {array} resdto.TrainerResponse
// @Router /trainers [get]
func (h *ClassHandler) ListTrainers(c *gin.Context) {
	views, err := h.trainers.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}

	res, err := resdto.FromTrainerViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

package api

import (
	"net/http"
	"strconv"

	reqdto "fitstudio/internal/handler/dto/request"
	resdto "fitstudio/internal/handler/dto/response"
	"fitstudio/internal/handler/httperr"
	"fitstudio/internal/handler/middleware"
	"fitstudio/internal/usecase/commands"
	"fitstudio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	cmds commands.ProgressCommands
	q    queries.ProgressQueries
}

func NewProgressHandler(cmds commands.ProgressCommands, q queries.ProgressQueries) *ProgressHandler {
	return &ProgressHandler{cmds: cmds, q: q}
}

// @Summary List progress entries
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} resdto.ProgressResponse
// @Router /progress [get]
func (h *ProgressHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthenticated, msgUnauthorized, nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, httperr.ErrInvalidParameter, msgInvalidRequest, nil)
			return
		}
		limit = n
	}

	views, err := h.q.List(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProgressViews(views))
}

// @Summary Record progress
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordProgressRequest true "Progress entry"
// @Success 201 {object} resdto.ProgressCreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /progress [post]
func (h *ProgressHandler) Record(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthenticated, msgUnauthorized, nil)
		return
	}

	var req reqdto.RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	id, err := h.cmds.Record(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		abortWithMapped(c, err, progressErrorMappings)
		return
	}
	c.JSON(http.StatusCreated, resdto.ProgressCreatedResponse{ID: id})
}

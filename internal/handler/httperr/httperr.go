package httperr

import (
	"fitstudio/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	ErrUnauthenticated  = errs.New("unauthenticated")
	ErrInvalidToken     = errs.New("invalid or expired token")
	ErrForbidden        = errs.New("insufficient permissions")
	ErrInvalidParameter = errs.New("invalid parameter")
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
